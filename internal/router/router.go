package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-kanban-board/internal/config"
	"go-kanban-board/internal/handler"
	"go-kanban-board/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Ticket *handler.TicketHandler
	User   *handler.UserHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/auth/login", h.Auth.Login)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		api.Use(authMiddleware.RequireAuth)

		api.Get("/tickets", h.Ticket.List)
		api.Post("/tickets", h.Ticket.Create)
		api.Get("/tickets/{id}", h.Ticket.Get)
		api.Put("/tickets/{id}", h.Ticket.Update)
		api.Delete("/tickets/{id}", h.Ticket.Delete)

		api.Get("/users", h.User.List)
	})

	return r
}
