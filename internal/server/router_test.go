package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/rfx/internal/shared"
)

func TestBasicRouter(t *testing.T) {
	t.Run("Handle rejects mismatched methods", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("pong"))
		}))

		ts := httptest.NewServer(router)
		defer ts.Close()

		resp, err := http.Post(ts.URL+"/ping", "text/plain", nil)
		if err != nil {
			t.Fatalf("POST /ping failed: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", resp.StatusCode)
		}
	})

	t.Run("middleware applies in registration order", func(t *testing.T) {
		var order []string

		mk := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mk("first"), mk("second"))
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		ts := httptest.NewServer(router)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/ping")
		if err != nil {
			t.Fatalf("GET /ping failed: %v", err)
		}
		resp.Body.Close()

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("middleware order = %v, want [first second]", order)
		}
	})

	t.Run("Throttle returns 429 above the limit", func(t *testing.T) {
		router := NewBasicRouter()
		router.Use(Throttle(1))
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		ts := httptest.NewServer(router)
		defer ts.Close()

		first, err := http.Get(ts.URL + "/ping")
		if err != nil {
			t.Fatalf("GET /ping failed: %v", err)
		}
		first.Body.Close()
		if first.StatusCode != http.StatusOK {
			t.Fatalf("first request status = %d, want 200", first.StatusCode)
		}

		second, err := http.Get(ts.URL + "/ping")
		if err != nil {
			t.Fatalf("GET /ping failed: %v", err)
		}
		second.Body.Close()
		if second.StatusCode != http.StatusTooManyRequests {
			t.Errorf("second request status = %d, want 429", second.StatusCode)
		}
	})

	t.Run("Logging passes the response through", func(t *testing.T) {
		router := NewBasicRouter()
		router.Use(Logging(shared.NewLogger(io.Discard)))
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("pong"))
		}))

		ts := httptest.NewServer(router)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/ping")
		if err != nil {
			t.Fatalf("GET /ping failed: %v", err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if string(body) != "pong" {
			t.Errorf("body = %q, want pong", body)
		}
	})
}
