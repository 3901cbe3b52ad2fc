package delete_session

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

// Handle DELETE /api/v1/sessions/{sessionId} (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	if err := h.service.Delete(r.Context(), sessionID); err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("DELETE /sessions/{id} - Rejected: session_id=%d, error=%v", sessionID, err)
			return
		}
		h.logger.Error("DELETE /sessions/{id} - Failed to delete session: session_id=%d, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session deleted: session_id=%d", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
