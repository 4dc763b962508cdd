package httpcall

import (
	"encoding/json"
	"unicode/utf8"
)

// Decode shapes a raw response body per the requested output format: a
// UTF-8 string for text, an untyped value tree for JSON. Decoding always
// consumes the whole body; on failure nothing partial is returned.
func Decode(raw *RawResponse, output Output) (any, error) {
	if raw == nil {
		return nil, newError(KindDecode, "response must not be nil")
	}

	switch output {
	case OutputText:
		if !utf8.Valid(raw.Body) {
			return nil, newError(KindDecode, "response body is not valid UTF-8")
		}
		return string(raw.Body), nil
	case OutputJSON:
		var value any
		if err := json.Unmarshal(raw.Body, &value); err != nil {
			return nil, wrapError(KindDecode, err, "parse response body as JSON")
		}
		return value, nil
	default:
		return nil, newError(KindDecode, "unknown output format %d", output)
	}
}
