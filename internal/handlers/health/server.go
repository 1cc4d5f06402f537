package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

// Config holds configuration for the liveness server
type Config struct {
	// Port to listen on
	Port int
}

// Server is the minimal HTTP responder used for process-health polling.
// It carries no game semantics.
type Server struct {
	srv *http.Server
}

// New creates the liveness server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	port := cfg.Port
	if port == 0 {
		port = 8080
	}

	mux := httprouter.New()
	mux.GET("/", serveAlive())

	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

func serveAlive() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "Global CAH Bot is Running!")
	}
}

// Start serves in the background until Stop is called
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Liveness server error: %v", err)
		}
	}()
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
