package httpcall

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestNewClientRejectsBadRootCAs(t *testing.T) {
	_, err := NewClient(Options{RootCAs: []byte("not a pem bundle")})
	if !errors.Is(err, ErrClientInit) {
		t.Fatalf("expected client init error, got %v", err)
	}
}

func TestClientIsReusableAcrossRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	client := newTestClient(t)
	for _, path := range []string{"/a", "/b", "/c"} {
		value, err := Call(context.Background(), client, map[string]any{"url": srv.URL + path})
		if err != nil {
			t.Fatalf("Call %s: %v", path, err)
		}
		if value != path {
			t.Fatalf("got %q want %q", value, path)
		}
	}
}

func TestClientIsSafeForConcurrentUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := newTestClient(t)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Call(context.Background(), client, map[string]any{"url": srv.URL})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Call: %v", err)
		}
	}
}

func TestClientTimeoutSurfacesAsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client, err := NewClient(Options{Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	_, err = Call(context.Background(), client, map[string]any{"url": srv.URL})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
