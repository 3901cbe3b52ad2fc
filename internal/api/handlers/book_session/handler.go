package book_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректное время, ожидается HH:MM и начало раньше окончания"
	msgMissingMemberID    = "не указан ID члена клуба"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "член клуба может бронировать только для себя"
)

type Handler struct {
	useCase BookSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case
	useCaseReq, err := req.ToUseCaseRequest(userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: user_id=%d, error=%v", userID, err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, errMissingMemberID):
			handlers.RespondBadRequest(w, msgMissingMemberID)
		case errors.Is(err, errForeignMember):
			handlers.RespondForbidden(w, msgForbidden)
		default:
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /sessions - Booking rejected: trainer_id=%d, member_id=%d, error=%v",
				useCaseReq.TrainerID, useCaseReq.MemberID, err)
			return
		}
		h.logger.Error("POST /sessions - Failed to book session: trainer_id=%d, member_id=%d, error=%v",
			useCaseReq.TrainerID, useCaseReq.MemberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session booked successfully: session_id=%d, trainer_id=%d, member_id=%d",
		result.ID, result.TrainerID, result.MemberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
