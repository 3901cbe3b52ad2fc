package get_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/service/sessions"
	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
)

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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	// Сервис сам проверит права доступа
	session, err := h.service.GetByID(r.Context(), sessionID, actor)
	if err != nil {
		if errors.Is(err, sessions.ErrAccessDenied) {
			h.logger.Warn("GET /sessions/{id} - Access denied: session_id=%d, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /sessions/{id} - Session not available: session_id=%d, error=%v", sessionID, err)
			return
		}
		h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%d, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/{id} - Session retrieved successfully: session_id=%d, user_id=%d", sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
