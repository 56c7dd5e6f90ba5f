package rest

import (
	"encoding/json"
	"net/http"
)

type spectatorCounter interface {
	ClientCount() int
}

type pingResponse struct {
	Status     string `json:"status"`
	Spectators int    `json:"spectators"`
}

// pingHandler - answers liveness checks with the number of connected spectators.
func pingHandler(feed spectatorCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(pingResponse{Status: "pong", Spectators: feed.ClientCount()}); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}
