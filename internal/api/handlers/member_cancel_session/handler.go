package member_cancel_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/service/sessions"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "можно отменить только свою сессию"
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

// Handle PATCH /api/v1/sessions/{sessionId}/member-cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/member-cancel - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	memberID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /sessions/{id}/member-cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req MemberCancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /sessions/{id}/member-cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.CancelByMember(r.Context(), sessionID, memberID, req.Reason)
	if err != nil {
		if errors.Is(err, sessions.ErrAccessDenied) {
			h.logger.Warn("PATCH /sessions/{id}/member-cancel - Access denied: session_id=%d, member_id=%d", sessionID, memberID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PATCH /sessions/{id}/member-cancel - Rejected: session_id=%d, error=%v", sessionID, err)
			return
		}
		h.logger.Error("PATCH /sessions/{id}/member-cancel - Failed to cancel session: session_id=%d, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /sessions/{id}/member-cancel - Session cancelled by member: session_id=%d, member_id=%d",
		sessionID, memberID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
