package member_cancel_session

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

type SessionService interface {
	CancelByMember(ctx context.Context, id int64, memberID int64, reason *string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
