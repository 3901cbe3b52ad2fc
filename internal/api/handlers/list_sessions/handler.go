package list_sessions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/service/sessions"
	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/sessions
// Query params: trainerId, memberId, date, status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /sessions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	result, err := h.service.List(r.Context(), serviceReq, actor)
	if err != nil {
		if errors.Is(err, sessions.ErrAccessDenied) {
			h.logger.Warn("GET /sessions - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /sessions - Invalid filter: %v", err)
			return
		}
		h.logger.Error("GET /sessions - Failed to list sessions: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions - Sessions retrieved successfully: user_id=%d, count=%d", userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
