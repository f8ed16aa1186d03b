package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/errutil"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/safe"
)

// Runner executes one digest run. Implemented by usecase.UseCases.
type Runner interface {
	Run(ctx context.Context) error
}

type Server struct {
	router *chi.Mux
	runner Runner

	// Concurrent runs against the same watermark store could clobber each
	// other's window, so triggers are serialized here.
	runLock *semaphore.Weighted
}

type Options func(*Server)

// WithRunLock shares a run lock with other trigger sources (e.g. the
// interval poller), so all of them compete for the same slot.
func WithRunLock(lock *semaphore.Weighted) Options {
	return func(s *Server) {
		s.runLock = lock
	}
}

func New(runner Runner, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		runner:  runner,
		runLock: semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Post("/trigger", s.handleTrigger)
	r.Get("/health", s.handleHealth)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !s.runLock.TryAcquire(1) {
		http.Error(w, "a run is already in progress", http.StatusConflict)
		return
	}
	defer s.runLock.Release(1)

	if err := s.runner.Run(ctx); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	safe.Write(ctx, w, []byte("Done!\n"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, []byte("OK\n"))
}
