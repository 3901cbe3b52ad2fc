package get_trainer_availability

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
)

const msgInvalidTrainerID = "некорректный ID тренера"

type Handler struct {
	service TrainerService
	logger  Logger
}

func NewHandler(service TrainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.ParseInt(mux.Vars(r)["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/availability - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), trainerID)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /trainers/{id}/availability - Trainer not available: trainer_id=%d, error=%v", trainerID, err)
			return
		}
		h.logger.Error("GET /trainers/{id}/availability - Failed to get availability: trainer_id=%d, error=%v", trainerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /trainers/{id}/availability - Availability retrieved: trainer_id=%d", trainerID)
	handlers.RespondJSON(w, http.StatusOK, availability)
}
