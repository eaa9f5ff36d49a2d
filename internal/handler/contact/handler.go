package contact

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	contactmodel "github.com/rraja/portfolio/backend/internal/model/contact"
	contactService "github.com/rraja/portfolio/backend/internal/service/contact"
	"github.com/rraja/portfolio/backend/internal/store"
	"github.com/rraja/portfolio/backend/pkg/utils"
)

// Handler exposes the contact form proxy endpoint.
type Handler struct {
	contactSvc *contactService.Service
}

// New creates the contact handler.
func New(contactSvc *contactService.Service) *Handler {
	return &Handler{contactSvc: contactSvc}
}

// RegisterRoutes mounts the contact routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			utils.RespondError(w, http.StatusBadRequest, "Request body required")
			return
		}
		utils.RespondInternalError(w, err.Error())
		return
	}

	missing := map[string]bool{
		"name":    strings.TrimSpace(payload.Name) == "",
		"email":   strings.TrimSpace(payload.Email) == "",
		"subject": strings.TrimSpace(payload.Subject) == "",
		"message": strings.TrimSpace(payload.Message) == "",
	}
	if missing["name"] || missing["email"] || missing["subject"] || missing["message"] {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "All fields are required",
			"missing": missing,
		})
		return
	}

	sub, err := h.contactSvc.Submit(r.Context(), contactmodel.Submission{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		var collabErr *store.CollaboratorError
		switch {
		case errors.Is(err, contactService.ErrNotConfigured):
			utils.RespondError(w, http.StatusInternalServerError, "Server configuration error: contact sink credentials are missing")
		case errors.As(err, &collabErr):
			body := map[string]any{"error": "Failed to save message"}
			if collabErr.Code != "" {
				body["code"] = collabErr.Code
			}
			if collabErr.Details != "" {
				body["details"] = collabErr.Details
			}
			utils.RespondJSON(w, http.StatusInternalServerError, body)
		default:
			utils.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      sub.ID,
	})
}
