package get_session

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

type SessionService interface {
	GetByID(ctx context.Context, id int64, actor models.Actor) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
