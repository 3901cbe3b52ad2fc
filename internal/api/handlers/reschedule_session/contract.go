package reschedule_session

import (
	"context"

	rescheduleSession "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_session"
)

type RescheduleSessionUseCase interface {
	Execute(ctx context.Context, req *rescheduleSession.Request) (*rescheduleSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
