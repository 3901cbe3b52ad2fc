package list_sessions

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

type SessionService interface {
	List(ctx context.Context, req *models.ListSessionsRequest, actor models.Actor) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
