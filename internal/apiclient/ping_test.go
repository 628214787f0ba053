package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ping": "pong", "version": "4.21.0", "imgapi": true}`))
	}))
	defer server.Close()

	ping, err := Ping(context.Background(), testConfig(server))
	require.NoError(t, err)
	require.NotNil(t, ping)
	assert.Equal(t, "pong", ping.Ping)
	assert.Equal(t, "4.21.0", ping.Version)
	assert.True(t, ping.Imgapi)
}

func TestPingMinimalResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ping": "pong"}`))
	}))
	defer server.Close()

	ping, err := Ping(context.Background(), testConfig(server))
	require.NoError(t, err)
	assert.Equal(t, "pong", ping.Ping)
	assert.Equal(t, "", ping.Version)
	assert.False(t, ping.Imgapi)
}
