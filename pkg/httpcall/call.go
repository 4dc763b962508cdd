// Package httpcall turns loose structured request descriptions into HTTP
// exchanges. A host layer (a script runtime, a CLI) hands over a plain
// map; the pipeline validates it into a typed descriptor, sends it through
// a pooled client, and decodes the body into the requested shape. Every
// failure is a tagged *Error value; validation failures never touch the
// network and transport failures never reach the decoder.
package httpcall

import "context"

// Call runs the full pipeline for one input value: validate, execute,
// decode. On success the returned value is either a string (text output)
// or an untyped JSON value tree.
func Call(ctx context.Context, client *Client, input map[string]any) (any, error) {
	d, err := ParseDescriptor(input)
	if err != nil {
		return nil, err
	}
	raw, err := Execute(ctx, client, d)
	if err != nil {
		return nil, err
	}
	return Decode(raw, d.Output)
}
