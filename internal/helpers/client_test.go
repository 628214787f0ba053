package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"imgapi-client/internal/clientmodels"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDataFromClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "release", r.Header.Get("X-Custom"))
		_, _ = w.Write([]byte(`{"name": "base-64-lts"}`))
	}))
	defer server.Close()

	caller := NewHttpCaller(context.Background(), false, 0)

	var destination struct {
		Name string `json:"name"`
	}
	response, err := caller.GetDataFromClient(server.URL, map[string]string{"X-Custom": "release"}, &destination)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "base-64-lts", destination.Name)
}

func TestGetDataFromClientNonPointerDestination(t *testing.T) {
	caller := NewHttpCaller(context.Background(), false, 0)

	var destination struct{}
	_, err := caller.GetDataFromClient("http://localhost", nil, destination)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination must be a pointer type")
}

func TestGetDataFromClientEmptyUrl(t *testing.T) {
	caller := NewHttpCaller(context.Background(), false, 0)

	_, err := caller.GetDataFromClient("", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url cannot be empty")
}

func TestGetDataFromClientApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code": "ImageUuidAlreadyExists", "message": "image uuid already exists"}`))
	}))
	defer server.Close()

	caller := NewHttpCaller(context.Background(), false, 0)

	response, err := caller.GetDataFromClient(server.URL, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, response.StatusCode)
	require.NotNil(t, response.ApiError)
	assert.Equal(t, "ImageUuidAlreadyExists", response.ApiError.Code)

	var transportErr *clientmodels.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusConflict, transportErr.StatusCode)
	assert.Equal(t, "image uuid already exists", transportErr.ApiError.Message)
}

// A non-2xx answer with an unparseable body still yields a usable ApiError
// built from the status text.
func TestGetDataFromClientApiErrorPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	caller := NewHttpCaller(context.Background(), false, 0)

	response, err := caller.GetDataFromClient(server.URL, nil, nil)
	require.Error(t, err)
	require.NotNil(t, response.ApiError)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), response.ApiError.Code)
}

func TestGetDataFromClientBadJson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"name\": "))
	}))
	defer server.Close()

	caller := NewHttpCaller(context.Background(), false, 0)

	var destination map[string]interface{}
	_, err := caller.GetDataFromClient(server.URL, nil, &destination)
	require.Error(t, err)

	var decodeErr *clientmodels.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, server.URL, decodeErr.Url)
}

func TestDownloadFileFromUrl(t *testing.T) {
	payload := []byte("artifact bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	caller := NewHttpCaller(context.Background(), false, 0)

	destination := filepath.Join(t.TempDir(), "artifact")
	written, err := caller.DownloadFileFromUrl(server.URL, destination)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), written)

	content, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, payload, content)
}

func TestDownloadFileFromUrlErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	caller := NewHttpCaller(context.Background(), false, 0)

	destination := filepath.Join(t.TempDir(), "artifact")
	_, err := caller.DownloadFileFromUrl(server.URL, destination)
	require.Error(t, err)

	var transportErr *clientmodels.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusForbidden, transportErr.StatusCode)

	_, statErr := os.Stat(destination)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRequestDataToClientCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	caller := NewHttpCaller(ctx, false, 0)

	_, err := caller.GetDataFromClient(server.URL, nil, nil)
	require.Error(t, err)

	var transportErr *clientmodels.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.StatusCode)
}
