package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const releaseTimeout = 2 * time.Second

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RedisLocker распределенная блокировка на SET NX PX
// Нужна, когда запущено несколько экземпляров сервиса
type RedisLocker struct {
	rdb     redis.Cmdable
	ttl     time.Duration
	retries int
	backoff time.Duration
	prefix  string
	logger  Logger
}

// NewRedisLocker создает распределенную блокировку
// ttl ограничивает время удержания, если процесс упал, не освободив ключ
func NewRedisLocker(rdb redis.Cmdable, ttl time.Duration, retries int, backoff time.Duration, logger Logger) *RedisLocker {
	if retries < 1 {
		retries = 1
	}
	return &RedisLocker{
		rdb:     rdb,
		ttl:     ttl,
		retries: retries,
		backoff: backoff,
		prefix:  "gym:lock:",
		logger:  logger,
	}
}

// Acquire пытается захватить ключ retries раз с паузой backoff
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	for attempt := 0; attempt < l.retries; attempt++ {
		ok, err := l.rdb.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: SETNX %s: %v", ErrRedis, redisKey, err)
		}
		if ok {
			return l.releaseFunc(redisKey, token), nil
		}

		if attempt == l.retries-1 {
			break
		}

		timer := time.NewTimer(l.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts", ErrNotAcquired, redisKey, l.retries)
}

func (l *RedisLocker) releaseFunc(redisKey, token string) func() {
	return func() {
		// контекст запроса мог быть уже отменен, освобождаем в своем
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		if err := releaseScript.Run(ctx, l.rdb, []string{redisKey}, token).Err(); err != nil && l.logger != nil {
			l.logger.Warn("lock: failed to release %s: %v", redisKey, err)
		}
	}
}
