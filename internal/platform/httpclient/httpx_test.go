// internal/platform/httpclient/httpx_test.go
package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docshot/internal/platform/errors"
	"docshot/internal/platform/logx"
)

func TestStatus(t *testing.T) {
	t.Run("returns status code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		client := New(DefaultConfig(), logx.NewSilent())
		status, err := client.Status(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusNoContent {
			t.Errorf("status = %d, want %d", status, http.StatusNoContent)
		}
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		client := New(Config{UserAgent: "docshot-test/1.0"}, logx.NewSilent())
		if _, err := client.Status(context.Background(), srv.URL); err != nil {
			t.Fatal(err)
		}
		if gotUA != "docshot-test/1.0" {
			t.Errorf("user agent = %q", gotUA)
		}
	})

	t.Run("unreachable host is a connection failure", func(t *testing.T) {
		client := New(Config{Timeout: 200 * time.Millisecond}, logx.NewSilent())
		_, err := client.Status(context.Background(), "http://127.0.0.1:1")
		if !errors.IsConnectionFailed(err) {
			t.Errorf("expected connection failure, got %v", err)
		}
	})
}
