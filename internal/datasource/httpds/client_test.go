package httpds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func noSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// TestClient_Get_RetriesServerErrors checks that 5xx responses are retried
// until a success arrives.
func TestClient_Get_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(Config{MaxRetries: 3})
	c.sleep = noSleep

	resp, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	resp.Body.Close()
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

// TestClient_Get_GivesUp checks that the retry budget is honored and the last
// error surfaces.
func TestClient_Get_GivesUp(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{MaxRetries: 2})
	c.sleep = noSleep

	_, err := c.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Get succeeded, want error")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d calls, want 3 (1 initial + 2 retries)", got)
	}
	if !strings.Contains(err.Error(), "giving up after 3 attempts") {
		t.Errorf("error = %q, want attempt count mentioned", err)
	}
}

// TestClient_Get_CanceledDuringBackoff checks that cancellation aborts the
// backoff wait instead of retrying.
func TestClient_Get_CanceledDuringBackoff(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := NewClient(Config{MaxRetries: 5})
	c.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	if _, err := c.Get(ctx, srv.URL); err != context.Canceled {
		t.Fatalf("Get error = %v, want context.Canceled", err)
	}
}

// TestClient_Fetch checks body reading, the byte cap, and 4xx handling.
func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doc":
			_, _ = w.Write([]byte(`{"a": 1, "b": "two"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{})
	c.sleep = noSleep

	body, err := c.Fetch(context.Background(), srv.URL+"/doc", 0)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if string(body) != `{"a": 1, "b": "two"}` {
		t.Errorf("Fetch body = %q", body)
	}

	capped, err := c.Fetch(context.Background(), srv.URL+"/doc", 4)
	if err != nil {
		t.Fatalf("Fetch with limit error: %v", err)
	}
	if string(capped) != `{"a"` {
		t.Errorf("capped body = %q, want first 4 bytes", capped)
	}

	if _, err := c.Fetch(context.Background(), srv.URL+"/missing", 0); err == nil {
		t.Fatal("Fetch of 404 succeeded, want error")
	}
}

// TestNewClient_Defaults verifies zero-config defaulting.
func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{})
	if c.cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", c.cfg.Timeout)
	}
	if c.cfg.InitialBackoff != 200*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 200ms", c.cfg.InitialBackoff)
	}
	if c.cfg.MaxBackoff != 5*time.Second {
		t.Errorf("MaxBackoff = %v, want 5s", c.cfg.MaxBackoff)
	}
}
