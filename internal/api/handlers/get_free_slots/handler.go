package get_free_slots

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgMissingDate      = "дата обязательна"
	msgInvalidQuery     = "некорректные параметры, ожидается date=YYYY-MM-DD и duration в минутах"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/free-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.ParseInt(mux.Vars(r)["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/free-slots - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /trainers/{id}/free-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(trainerID, dateStr, query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/free-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	useCaseReq.AsMember = !middleware.IsAdmin(r.Context())

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /trainers/{id}/free-slots - Rejected: trainer_id=%d, error=%v", trainerID, err)
			return
		}
		h.logger.Error("GET /trainers/{id}/free-slots - Failed to get slots: trainer_id=%d, error=%v", trainerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /trainers/{id}/free-slots - Found %d slots: trainer_id=%d, date=%s",
		len(result.Slots), trainerID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
