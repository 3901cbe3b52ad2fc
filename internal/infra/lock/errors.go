package lock

import "errors"

var (
	// ErrNotAcquired возвращается, когда блокировку не удалось получить за отведенные попытки
	ErrNotAcquired = errors.New("lock: not acquired")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("lock: redis error")
)
