package httpcall

import (
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Options configures a Client. The zero value gives a client with no overall
// timeout, default pooling and system trust roots.
type Options struct {
	// Timeout bounds a whole exchange, including body read. Zero means no
	// deadline; there is no per-request override.
	Timeout time.Duration
	// MaxIdleConns caps pooled idle connections (total and per host).
	MaxIdleConns int
	// IdleConnTimeout closes idle pooled connections after this duration.
	IdleConnTimeout time.Duration
	// TLSInsecure disables server certificate verification.
	TLSInsecure bool
	// RootCAs, when non-empty, replaces the system trust store with the
	// given PEM bundle.
	RootCAs []byte
}

// Client is a reusable, connection-pooling transport handle. It holds no
// per-request state and is safe for concurrent use; create one and share it
// across calls.
type Client struct {
	rc *resty.Client
}

// NewClient builds a Client from opts. TLS material that cannot be loaded
// fails here, before any request is attempted.
func NewClient(opts Options) (*Client, error) {
	tlsCfg := &tls.Config{InsecureSkipVerify: opts.TLSInsecure}
	if len(opts.RootCAs) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(opts.RootCAs) {
			return nil, newError(KindClientInit, "no usable certificates in root CA bundle")
		}
		tlsCfg.RootCAs = pool
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConns,
		IdleConnTimeout:     opts.IdleConnTimeout,
		TLSClientConfig:     tlsCfg,
	}

	rc := resty.New()
	rc.SetTransport(transport)
	// Bodies are attached regardless of method, GET included.
	rc.SetAllowGetMethodPayload(true)
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}

	return &Client{rc: rc}, nil
}

// Close releases pooled idle connections. The client remains usable.
func (c *Client) Close() {
	if c == nil || c.rc == nil {
		return
	}
	if t, ok := c.rc.GetClient().Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
}
