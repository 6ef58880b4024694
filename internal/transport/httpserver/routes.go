package httpserver

import (
	"net/http"
	"time"

	"band-practice-go/internal/config"
	"band-practice-go/internal/transport/httpserver/handler"
	"band-practice-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSOrigins))

	r.Get("/", handlers.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/members", handlers.ListMembers)
		r.Post("/members", handlers.CreateMember)
		r.Get("/members/{id}", handlers.GetMember)
		r.Put("/members/{id}", handlers.UpdateMember)
		r.Delete("/members/{id}", handlers.DeleteMember)

		r.Get("/practices", handlers.ListPractices)
		r.Post("/practices", handlers.CreatePractice)
		r.Get("/practices/{id}", handlers.GetPractice)
		r.Put("/practices/{id}", handlers.UpdatePractice)
		r.Delete("/practices/{id}", handlers.DeletePractice)
		r.Patch("/practices/{id}/responses/{member_id}", handlers.UpdateMemberResponse)

		r.Post("/cleanup", handlers.RunCleanup)
	})

	return r
}
