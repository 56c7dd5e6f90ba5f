package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeed struct {
	clients int
	served  int
}

func (that *fakeFeed) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	that.served++
	w.WriteHeader(http.StatusSwitchingProtocols)
}

func (that *fakeFeed) ClientCount() int {
	return that.clients
}

func TestPing(t *testing.T) {
	// Given: a feed with two spectators
	mux := NewMux(&fakeFeed{clients: 2})

	// When: /ping is requested
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: it answers pong with the audience size
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp pingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, pingResponse{Status: "pong", Spectators: 2}, resp)
}

func TestNewMux_Feed(t *testing.T) {
	feed := &fakeFeed{}
	mux := NewMux(feed)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	assert.Equal(t, 1, feed.served)
	assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
}
