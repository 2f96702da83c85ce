package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"libdb.so/hserve"
)

// NewRouter wires the JSON routes around the game manager.
func NewRouter(handlers Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/ping", handlers.PingHandler)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", handlers.StartSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetSession)
			r.Delete("/", handlers.EndSession)
			r.Post("/moves", handlers.AttemptMove)
			r.Post("/reset", handlers.ResetSession)
		})
	})

	return r
}

// Start serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	if err := hserve.ListenAndServe(ctx, ":"+port, handler); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
