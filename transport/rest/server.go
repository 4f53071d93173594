package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/yahtzee-backend/internal/entity"
	"github.com/rocketscienceinc/yahtzee-backend/internal/yahtzee"
)

const (
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type scoreUseCase interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayer(ctx context.Context, id string) (*entity.Player, error)
	DeletePlayer(ctx context.Context, id string) error

	Options(ctx context.Context, id string, dice []int) ([]yahtzee.Option, error)
	Claim(ctx context.Context, id string, category yahtzee.Category, dice []int) (*entity.Player, int, error)
	ForceZero(ctx context.Context, id string, category yahtzee.Category, dice []int) (*entity.Player, error)
}

type Server struct {
	logger *slog.Logger
	scores scoreUseCase

	router chi.Router
}

func New(logger *slog.Logger, scores scoreUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		scores: scores,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(handlerTimeout))

	router.Get("/ping", server.pingHandler)

	router.Route("/players", func(r chi.Router) {
		r.Post("/", server.createPlayer)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", server.getPlayer)
			r.Delete("/", server.deletePlayer)
			r.Post("/options", server.options)
			r.Post("/claim", server.claim)
			r.Post("/zero", server.zero)
		})
	})

	server.router = router

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}
