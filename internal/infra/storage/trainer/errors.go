package trainer

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("trainer.repository: trainer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("trainer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("trainer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("trainer.repository: failed to scan row")

	// ErrInvalidAvailability возвращается, когда в БД лежит некорректное расписание
	ErrInvalidAvailability = errors.New("trainer.repository: invalid availability row")
)
