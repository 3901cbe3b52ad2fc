package complete_session

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

type SessionService interface {
	MarkCompleted(ctx context.Context, id int64) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
