package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rraja/portfolio/backend/internal/handler/chat"
	"github.com/rraja/portfolio/backend/internal/handler/contact"
	middlewarePkg "github.com/rraja/portfolio/backend/internal/middleware"
	chatService "github.com/rraja/portfolio/backend/internal/service/chat"
	contactService "github.com/rraja/portfolio/backend/internal/service/contact"
	"github.com/rraja/portfolio/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, contactSvc *contactService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middlewarePkg.CORS)
	r.Use(middlewarePkg.Recover)

	// The JSON envelope covers routing misses too, not just handler errors.
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Not Found")
	})

	chatHandler := chat.New(chatSvc)
	contactHandler := contact.New(contactSvc)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
	})

	return r
}
