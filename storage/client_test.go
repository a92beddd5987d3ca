package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a mock storage service and returns a configured
// client.
func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, "test-token")
	require.NoError(t, err)
	return client
}

// memoryAssets is an in-memory asset store backing round-trip tests.
type memoryAssets struct {
	mu    sync.Mutex
	data  map[string][]byte
	types map[string]string
}

func newMemoryAssets() *memoryAssets {
	return &memoryAssets{
		data:  make(map[string][]byte),
		types: make(map[string]string),
	}
}

func (m *memoryAssets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	const prefix = "/api/v1/storage/asset/"
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix), "/")

	if name == "" && r.Method == http.MethodGet {
		results := make([]map[string]string, 0, len(m.data))
		for n := range m.data {
			results = append(results, map[string]string{"name": n})
		}
		json.NewEncoder(w).Encode(map[string]any{"results": results})
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		m.data[name] = body
		m.types[name] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		data, ok := m.data[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not found."})
			return
		}
		w.Header().Set("Content-Type", m.types[name])
		w.Write(data)
	case http.MethodDelete:
		delete(m.data, name)
		delete(m.types, name)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/storage/asset/", r.URL.Path)
		assert.Equal(t, "Token test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"name": "report"},
				{"name": "invoice"},
			},
		})
	}))

	names, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"report", "invoice"}, names)
}

func TestDelete(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/storage/asset/report/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Delete(context.Background(), "report"))
}

func TestSetBytes_RequestShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/storage/asset/blob/", r.URL.Path)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Contains(t, r.Header.Get("User-Agent"), "automizor/")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG", string(body))

		w.WriteHeader(http.StatusOK)
	}))

	err := client.SetBytes(context.Background(), "blob", []byte("\x89PNG"), "image/png")
	require.NoError(t, err)
}

func TestSetBytes_DefaultContentType(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.SetBytes(context.Background(), "blob", []byte{1, 2, 3}, ""))
}

func TestRoundTrip_Bytes(t *testing.T) {
	client := newTestClient(t, newMemoryAssets())

	data := []byte{0x00, 0xff, 0x10, 0x20}
	require.NoError(t, client.SetBytes(context.Background(), "raw", data, "application/octet-stream"))

	got, err := client.GetBytes(context.Background(), "raw")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestRoundTrip_Text(t *testing.T) {
	client := newTestClient(t, newMemoryAssets())

	require.NoError(t, client.SetText(context.Background(), "greeting", "hello"))

	got, err := client.GetText(context.Background(), "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestRoundTrip_JSON(t *testing.T) {
	client := newTestClient(t, newMemoryAssets())

	value := map[string]any{
		"count":   float64(3),
		"enabled": true,
		"tags":    []any{"a", "b"},
		"owner":   nil,
	}
	require.NoError(t, client.SetJSON(context.Background(), "settings", value))

	var got map[string]any
	require.NoError(t, client.GetJSON(context.Background(), "settings", &got))
	assert.Equal(t, value, got)
}

func TestGetFile(t *testing.T) {
	client := newTestClient(t, newMemoryAssets())

	require.NoError(t, client.SetText(context.Background(), "report", "contents"))

	path := filepath.Join(t.TempDir(), "report.txt")
	got, err := client.GetFile(context.Background(), "report", path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))
}

func TestSetFile_ContentTypeInference(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		explicit string
		want     string
	}{
		{"json extension", "data.json", "", "application/json"},
		{"unknown extension", "data.xyzzy", "", "application/octet-stream"},
		{"explicit wins", "data.json", "text/plain", "text/plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotType string
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotType = r.Header.Get("Content-Type")
				w.WriteHeader(http.StatusOK)
			}))

			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

			require.NoError(t, client.SetFile(context.Background(), "data", path, tt.explicit))
			assert.Equal(t, tt.want, gotType)
		})
	}
}

func TestSetFile_MissingFile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a missing local file")
	}))

	err := client.SetFile(context.Background(), "data", filepath.Join(t.TempDir(), "absent"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}

func TestGetBytes_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not found."})
	}))

	_, err := client.GetBytes(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not found.", apiErr.Detail)
}

func TestGetJSON_InvalidBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))

	var got map[string]any
	err := client.GetJSON(context.Background(), "broken", &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode asset")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := New(srv.URL, "test-token")
	require.NoError(t, err)
	srv.Close()

	_, err = client.List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Detail)
}
