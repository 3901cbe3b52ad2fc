package lock

import (
	"context"
	"sync"
)

// KeyedMutex блокировки по ключу внутри одного процесса
// Записи удаляются, когда ключ никто не держит и не ждет
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

// NewKeyedMutex создает блокировку внутри процесса
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyLock)}
}

// Acquire ждет освобождения ключа или отмены контекста
func (m *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	l := m.ref(key)

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		m.unref(key)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			m.unref(key)
		})
	}, nil
}

func (m *KeyedMutex) ref(key string) *keyLock {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		m.locks[key] = l
	}
	l.refs++
	return l
}

func (m *KeyedMutex) unref(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.locks[key]
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
}

func (m *KeyedMutex) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
