package reschedule_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректное время, ожидается HH:MM и начало раньше окончания"
	msgPartialTime        = "startTime и endTime указываются вместе"
	msgInvalidStatus      = "неизвестный статус сессии"
)

type Handler struct {
	useCase RescheduleSessionUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId} (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req RescheduleSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id} - Failed to parse request: session_id=%d, error=%v", sessionID, err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, errPartialTime):
			handlers.RespondBadRequest(w, msgPartialTime)
		case errors.Is(err, errInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PATCH /sessions/{id} - Rejected: session_id=%d, error=%v", sessionID, err)
			return
		}
		h.logger.Error("PATCH /sessions/{id} - Failed to update session: session_id=%d, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /sessions/{id} - Session updated successfully: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
