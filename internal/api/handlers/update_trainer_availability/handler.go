package update_trainer_availability

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymService/internal/api/handlers"
)

const (
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
)

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

// Handle PUT /api/v1/trainers/{trainerId}/availability (только администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.ParseInt(mux.Vars(r)["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /trainers/{id}/availability - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /trainers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	availability, err := h.service.UpdateAvailability(r.Context(), req.ToServiceRequest(trainerID))
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PUT /trainers/{id}/availability - Rejected: trainer_id=%d, error=%v", trainerID, err)
			return
		}
		h.logger.Error("PUT /trainers/{id}/availability - Failed to update availability: trainer_id=%d, error=%v", trainerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /trainers/{id}/availability - Availability updated: trainer_id=%d", trainerID)
	handlers.RespondJSON(w, http.StatusOK, availability)
}
