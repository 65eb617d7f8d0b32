package spectate

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Server exposes a hub over HTTP.
//
//	/ws        WebSocket stream of JSON snapshots
//	/snapshot  the latest snapshot as a plain JSON document
type Server struct {
	Addr string
	Hub  *Hub
}

// Handler returns the HTTP routes for the hub.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.Hub.ServeWS)
	mux.HandleFunc("/snapshot", s.serveSnapshot)
	return mux
}

func (s *Server) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	last := s.Hub.Last()
	if last == nil {
		http.Error(w, "No game in progress", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(last)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Hub.logger.Info("spectator server shutting down", "address", s.Addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
