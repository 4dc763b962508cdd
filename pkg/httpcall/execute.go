package httpcall

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// RawResponse is the undecoded outcome of an exchange. The body is fully
// materialized; the status code is reported as-is, never turned into an
// error by this layer.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// knownMethods maps accepted method tokens to their canonical form.
var knownMethods = map[string]string{
	http.MethodGet:     http.MethodGet,
	http.MethodHead:    http.MethodHead,
	http.MethodPost:    http.MethodPost,
	http.MethodPut:     http.MethodPut,
	http.MethodPatch:   http.MethodPatch,
	http.MethodDelete:  http.MethodDelete,
	http.MethodOptions: http.MethodOptions,
	http.MethodTrace:   http.MethodTrace,
}

// Execute sends one validated descriptor through client and returns the raw
// response. The call blocks until the full body arrives or the transport
// fails; connection, TLS, DNS and timeout failures all surface as a
// transport error with the underlying cause. No retries.
func Execute(ctx context.Context, client *Client, d *Descriptor) (*RawResponse, error) {
	if client == nil || client.rc == nil {
		return nil, newError(KindTransport, "client must not be nil")
	}
	if d == nil {
		return nil, newError(KindTransport, "descriptor must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	method, ok := knownMethods[strings.ToUpper(d.Method)]
	if !ok {
		return nil, newError(KindTransport, "invalid method %q", d.Method)
	}

	u, err := url.Parse(d.URL)
	if err != nil {
		return nil, wrapError(KindTransport, err, "parse url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, newError(KindTransport, "url %q is not absolute", d.URL)
	}

	payload, err := serializeBody(d.Body)
	if err != nil {
		return nil, err
	}

	req := client.rc.R().SetContext(ctx)
	for _, h := range d.Headers {
		req.Header.Add(h.Name, h.Value)
	}
	req.SetBody(payload)

	resp, err := req.Execute(method, u.String())
	if err != nil {
		return nil, wrapError(KindTransport, err, "%s %s", method, u.String())
	}

	return &RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// serializeBody renders the resolved body variant to its wire bytes. The
// body is attached even when empty so repeated calls behave identically.
func serializeBody(b Body) ([]byte, error) {
	switch b.kind {
	case bodyText:
		return []byte(b.text), nil
	case bodyJSON:
		payload, err := json.Marshal(b.value)
		if err != nil {
			return nil, wrapError(KindTransport, err, "serialize body")
		}
		return payload, nil
	default:
		return []byte{}, nil
	}
}
