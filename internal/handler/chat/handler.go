package chat

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rraja/portfolio/backend/internal/service/ai"
	chatService "github.com/rraja/portfolio/backend/internal/service/chat"
	"github.com/rraja/portfolio/backend/pkg/utils"
)

// Handler exposes the chat proxy endpoint.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			utils.RespondError(w, http.StatusBadRequest, "Request body required")
			return
		}
		utils.RespondInternalError(w, err.Error())
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.chatSvc.Respond(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		switch {
		case errors.Is(err, chatService.ErrMessageRequired):
			utils.RespondError(w, http.StatusBadRequest, "Message is required")
		case errors.Is(err, chatService.ErrNotConfigured):
			utils.RespondError(w, http.StatusInternalServerError, "Server configuration error: chat provider credentials are missing")
		case errors.Is(err, ai.ErrNoResponse):
			utils.RespondError(w, http.StatusInternalServerError, "No response generated")
		default:
			utils.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}
