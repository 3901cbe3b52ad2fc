package complete_session

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
)

const msgInvalidSessionID = "некорректный ID сессии"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/complete (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/complete - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	session, err := h.service.MarkCompleted(r.Context(), sessionID)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PATCH /sessions/{id}/complete - Rejected: session_id=%d, error=%v", sessionID, err)
			return
		}
		h.logger.Error("PATCH /sessions/{id}/complete - Failed to complete session: session_id=%d, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /sessions/{id}/complete - Session completed: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
