// Package web serves the demo's landing page, a JSON status document and
// static files to browsers.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/config"
)

//go:embed templates/index.html
var defaultIndex []byte

// shutdownTimeout bounds how long in-flight requests get after shutdown starts.
const shutdownTimeout = 5 * time.Second

// GameStatus is the document served at /game.
type GameStatus struct {
	Status   string            `json:"status"`
	Message  string            `json:"message"`
	Controls map[string]string `json:"controls"`
}

// Server is the HTTP delivery server.
type Server struct {
	cfg    config.ServerConfig
	status GameStatus
	logger *log.Logger
}

// NewServer creates a server describing controls on its status page.
func NewServer(cfg config.ServerConfig, controls []bounce.Control, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	status := GameStatus{
		Status:   "ready",
		Message:  "Game is ready to play",
		Controls: make(map[string]string, len(controls)),
	}
	for _, c := range controls {
		status.Controls[c.ID] = c.Description
	}

	return &Server{cfg: cfg, status: status, logger: logger}
}

// Handler returns the complete handler chain.
func (s *Server) Handler() http.Handler {
	root := s.cfg.Root
	if root == "" {
		root = "."
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.serveIndex)
	mux.HandleFunc("GET /index.html", s.serveIndex)
	mux.HandleFunc("GET /game", s.serveGame)
	mux.Handle("/", http.FileServer(http.Dir(root)))

	return s.logRequests(withCORS(mux))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", "http://"+s.cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// serveIndex serves the configured landing page, or the built-in one.
func (s *Server) serveIndex(w http.ResponseWriter, _ *http.Request) {
	content := defaultIndex
	if s.cfg.Index != "" {
		data, err := os.ReadFile(s.cfg.Index)
		if err != nil {
			http.Error(w, "Index page not found", http.StatusNotFound)
			return
		}
		content = data
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // Client may have gone away
	w.Write(content)
}

// serveGame serves the status document.
func (s *Server) serveGame(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s.status); err != nil {
		s.logger.Error("encode status", "error", err)
	}
}

// withCORS adds permissive CORS headers to every response and answers
// preflight requests directly.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Infof("[%s] %s %s %d", r.RemoteAddr, r.Method, r.URL.Path, rec.status)
	})
}
