package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/coordtask/pkg/coords"
	"github.com/matzehuels/coordtask/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New("", log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestNewDefaults(t *testing.T) {
	s := New("", nil)
	if s.Addr() != DefaultAddr {
		t.Errorf("Addr() = %q, want %q", s.Addr(), DefaultAddr)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestParseEndpoint(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		variant string
		raw     string
		want    coords.Coordinate
	}{
		{
			variant: "dependency",
			raw:     "junit:junit:4.13:test",
			want:    coords.Coordinate{Variant: coords.Dependency, GroupID: "junit", ArtifactID: "junit", Version: "4.13", Type: "jar", Scope: "test"},
		},
		{
			variant: "excl",
			raw:     "gid:aid:ext:",
			want:    coords.Coordinate{Variant: coords.Exclusion, GroupID: "gid", ArtifactID: "aid", Type: "ext", Classifier: ""},
		},
		{
			variant: "pom",
			raw:     "gid:aid:ver",
			want:    coords.Coordinate{Variant: coords.POM, GroupID: "gid", ArtifactID: "aid", Version: "ver"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			resp := get(t, ts, "/v1/coords/"+tt.variant+"?raw="+url.QueryEscape(tt.raw))
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var got coords.Coordinate
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseEndpointKeepsEmptyFields(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		variant string
		raw     string
		key     string
	}{
		{"exclusion", "g:a::cls", "extension"},
		{"exclusion", "g:a:jar:", "classifier"},
		{"dependency", "g:a:v:", "scope"},
		{"dependency", "g:a:v::test", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			resp := get(t, ts, "/v1/coords/"+tt.variant+"?raw="+url.QueryEscape(tt.raw))
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			var fields map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
				t.Fatalf("decode: %v", err)
			}
			got, ok := fields[tt.key]
			if !ok {
				t.Fatalf("key %q missing from %v", tt.key, fields)
			}
			if got != "" {
				t.Errorf("%s = %v, want empty string", tt.key, got)
			}
		})
	}
}

func TestParseEndpointErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		status   int
		code     errors.Code
		segments int
	}{
		{"short dependency", "/v1/coords/dependency?raw=g:a", http.StatusBadRequest, errors.ErrCodeInvalidCoordinate, 2},
		{"long dependency", "/v1/coords/dep?raw=g:a:v:t:c:s:x", http.StatusBadRequest, errors.ErrCodeInvalidCoordinate, 7},
		{"missing raw", "/v1/coords/pom", http.StatusBadRequest, errors.ErrCodeInvalidInput, 0},
		{"unknown variant", "/v1/coords/artifact?raw=g:a:v", http.StatusNotFound, errors.ErrCodeInvalidVariant, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, ts, tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if body.Segments != tt.segments {
				t.Errorf("segments = %d, want %d", body.Segments, tt.segments)
			}
		})
	}
}

func TestBatchEndpoint(t *testing.T) {
	ts := newTestServer(t)

	payload := `{"coords": ["g:a:v", "g:a", "g:a:v:war:runtime"]}`
	resp, err := http.Post(ts.URL+"/v1/coords/dependency", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(got.Results))
	}
	if got.Failed != 1 {
		t.Errorf("Failed = %d, want 1", got.Failed)
	}
	if got.Results[0].Coordinate == nil || got.Results[0].Coordinate.Scope != "compile" {
		t.Errorf("result[0] = %+v", got.Results[0])
	}
	if got.Results[1].Error == nil || got.Results[1].Error.Expected != "3-6" {
		t.Errorf("result[1] = %+v", got.Results[1])
	}
	if got.Results[1].Coordinate != nil {
		t.Errorf("failed result carries coordinate: %+v", got.Results[1].Coordinate)
	}
	if got.Results[2].Coordinate == nil || got.Results[2].Coordinate.Type != "war" {
		t.Errorf("result[2] = %+v", got.Results[2])
	}
}

func TestBatchEndpointBadBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/coords/pom", "application/json", bytes.NewReader([]byte("{")))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRunShutdown(t *testing.T) {
	s := New("127.0.0.1:0", log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
