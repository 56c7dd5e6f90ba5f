package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// SpectatorFeed is the websocket endpoint that also reports its audience.
type SpectatorFeed interface {
	http.Handler
	spectatorCounter
}

// NewMux - routes /ping and mounts the spectator feed on /ws.
func NewMux(feed SpectatorFeed) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ping", pingHandler(feed))
	mux.Handle("/ws", feed)

	return mux
}

// Start - serves the mux until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
