package httpcall

import (
	"fmt"
	"sort"
	"strings"
)

// Output selects the shape the response body is decoded into.
type Output int

const (
	// OutputText returns the body as a UTF-8 string.
	OutputText Output = iota
	// OutputJSON parses the body as a JSON value tree.
	OutputJSON
)

// bodyKind tags the resolved body variant of a descriptor.
type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyText
	bodyJSON
)

// Body is the request payload resolved during validation: absent, literal
// text, or a structured value serialized as JSON at send time.
type Body struct {
	kind  bodyKind
	text  string
	value any
}

// Descriptor is the validated, typed form of a requested HTTP exchange.
// It is built once by ParseDescriptor and not mutated afterwards.
type Descriptor struct {
	Method  string
	URL     string
	Headers []HeaderEntry
	Body    Body
	Output  Output
}

// defaultMethod is used when the input omits the method field.
const defaultMethod = "GET"

// ParseDescriptor validates a loose input value into a Descriptor. It is
// total and side-effect-free: no I/O happens here, and the first invalid
// field short-circuits with an error describing it.
func ParseDescriptor(input map[string]any) (*Descriptor, error) {
	if input == nil {
		return nil, newError(KindInvalidDescriptor, "request descriptor must not be nil")
	}

	d := &Descriptor{Method: defaultMethod, Output: OutputText}

	rawURL, ok := input["url"]
	if !ok {
		return nil, newError(KindInvalidDescriptor, "missing required field \"url\"")
	}
	u, ok := rawURL.(string)
	if !ok {
		return nil, newError(KindInvalidDescriptor, "field \"url\" must be a string, got %T", rawURL)
	}
	d.URL = u

	if rawMethod, ok := input["method"]; ok {
		m, ok := rawMethod.(string)
		if !ok {
			return nil, newError(KindInvalidDescriptor, "field \"method\" must be a string, got %T", rawMethod)
		}
		if strings.TrimSpace(m) == "" {
			return nil, newError(KindInvalidDescriptor, "field \"method\" must not be empty")
		}
		d.Method = m
	}

	if rawHeaders, ok := input["headers"]; ok {
		headers, err := parseHeadersField(rawHeaders)
		if err != nil {
			return nil, err
		}
		d.Headers = headers
	}

	if rawBody, ok := input["body"]; ok {
		d.Body = resolveBody(rawBody)
	}

	if rawOutput, ok := input["output"]; ok {
		out, err := parseOutputField(rawOutput)
		if err != nil {
			return nil, err
		}
		d.Output = out
	}

	return d, nil
}

// parseHeadersField accepts either a name→value mapping or an ordered
// sequence of raw "Name: Value" strings. Each entry goes through the header
// codec; the first failure stops validation.
func parseHeadersField(raw any) ([]HeaderEntry, error) {
	switch v := raw.(type) {
	case map[string]any:
		// Mapping order is unspecified by the host value; iterate sorted
		// keys so validation failures are deterministic.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make([]HeaderEntry, 0, len(keys))
		for _, k := range keys {
			entry, err := NewHeaderEntry(k, stringify(v[k]))
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	case []any:
		entries := make([]HeaderEntry, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, newError(KindInvalidHeader, "header entries must be strings, got %T", item)
			}
			entry, err := ParseHeaderString(s)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	case []string:
		entries := make([]HeaderEntry, 0, len(v))
		for _, s := range v {
			entry, err := ParseHeaderString(s)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	default:
		return nil, newError(KindInvalidDescriptor, "field \"headers\" must be a mapping or a sequence of strings, got %T", raw)
	}
}

// resolveBody decides the body variant once, during validation. Strings go
// out literally; any other value is serialized as JSON at send time.
func resolveBody(raw any) Body {
	if raw == nil {
		return Body{}
	}
	if s, ok := raw.(string); ok {
		return Body{kind: bodyText, text: s}
	}
	return Body{kind: bodyJSON, value: raw}
}

// parseOutputField accepts the literal tokens "text" and "json".
func parseOutputField(raw any) (Output, error) {
	s, ok := raw.(string)
	if !ok {
		return OutputText, newError(KindInvalidDescriptor, "field \"output\" must be a string, got %T", raw)
	}
	switch s {
	case "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return OutputText, newError(KindInvalidDescriptor, "unknown output format %q (want \"text\" or \"json\")", s)
	}
}

// stringify renders a header mapping value as its textual form.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
