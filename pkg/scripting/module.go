// Package scripting exposes the httpcall pipeline to embedded JavaScript.
// A registered runtime gains an `http` namespace whose `client()` factory
// hands scripts a reusable transport handle; request failures surface as
// catchable script exceptions rather than host errors.
package scripting

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/novalith-hq/httpbridge/pkg/httpcall"
)

// Module binds the http namespace into goja runtimes. One Module may serve
// many runtimes; each script-created client owns its own connection pool
// built from the module's options.
type Module struct {
	opts httpcall.Options
}

// New returns a Module whose script-created clients use opts.
func New(opts httpcall.Options) *Module {
	return &Module{opts: opts}
}

// Enable registers the `http` namespace on rt. Scripts then do:
//
//	let c = http.client();
//	let body = c.request({url: "https://example.com", output: "json"});
func (m *Module) Enable(rt *goja.Runtime) error {
	if rt == nil {
		return fmt.Errorf("runtime must not be nil")
	}

	ns := rt.NewObject()
	if err := ns.Set("client", func() (*goja.Object, error) {
		return m.newClientObject(rt)
	}); err != nil {
		return fmt.Errorf("bind http.client: %w", err)
	}

	if err := rt.Set("http", ns); err != nil {
		return fmt.Errorf("register http namespace: %w", err)
	}
	return nil
}

// newClientObject builds the script-facing handle around a fresh Client.
// Returned errors become thrown exceptions in the script.
func (m *Module) newClientObject(rt *goja.Runtime) (*goja.Object, error) {
	client, err := httpcall.NewClient(m.opts)
	if err != nil {
		return nil, err
	}

	obj := rt.NewObject()

	request := func(desc map[string]any) (any, error) {
		return httpcall.Call(context.Background(), client, desc)
	}
	if err := obj.Set("request", request); err != nil {
		return nil, fmt.Errorf("bind request: %w", err)
	}

	if err := obj.Set("get", func(url string, desc ...map[string]any) (any, error) {
		return request(mergeDescriptor(desc, "GET", url, nil))
	}); err != nil {
		return nil, fmt.Errorf("bind get: %w", err)
	}

	if err := obj.Set("post", func(url string, body any, desc ...map[string]any) (any, error) {
		return request(mergeDescriptor(desc, "POST", url, body))
	}); err != nil {
		return nil, fmt.Errorf("bind post: %w", err)
	}

	if err := obj.Set("close", func() { client.Close() }); err != nil {
		return nil, fmt.Errorf("bind close: %w", err)
	}

	return obj, nil
}

// mergeDescriptor copies the optional trailing descriptor and overlays the
// shorthand's method, url and body.
func mergeDescriptor(extra []map[string]any, method, url string, body any) map[string]any {
	desc := make(map[string]any)
	if len(extra) > 0 {
		for k, v := range extra[0] {
			desc[k] = v
		}
	}
	desc["method"] = method
	desc["url"] = url
	if body != nil {
		desc["body"] = body
	}
	return desc
}
