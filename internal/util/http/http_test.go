package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmylchreest/tailtint/internal/security"
)

func TestFetch(t *testing.T) {
	var gotAgent, gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotHeader = r.Header.Get("X-Test")
		w.Write([]byte(":root { --primary: #fff; }"))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{Headers: map[string]string{"X-Test": "yes"}})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != ":root { --primary: #fff; }" {
		t.Errorf("Fetch() = %q", data)
	}
	if !strings.HasPrefix(gotAgent, UserAgentName+"/") {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if gotHeader != "yes" {
		t.Errorf("X-Test = %q", gotHeader)
	}
}

func TestFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, FetchOptions{}); err == nil {
		t.Error("Fetch() expected error for 404")
	}
}

func TestFetchSizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{MaxBytes: 16})
	if !errors.Is(err, security.ErrSizeLimit) {
		t.Fatalf("Fetch() error = %v, want ErrSizeLimit", err)
	}
	if len(data) != 16 {
		t.Errorf("Fetch() returned %d bytes, want 16", len(data))
	}
}
