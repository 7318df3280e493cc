package usecase

import "sync"

type threadLock struct {
	mu   sync.Mutex
	refs int
}

// threadLocks serializes operations per thread id inside this process.
// Entries are dropped once nobody holds or waits for them.
type threadLocks struct {
	mu    sync.Mutex
	locks map[string]*threadLock
}

func newThreadLocks() *threadLocks {
	return &threadLocks{locks: make(map[string]*threadLock)}
}

func (l *threadLocks) lock(id string) func() {
	l.mu.Lock()
	tl, ok := l.locks[id]
	if !ok {
		tl = &threadLock{}
		l.locks[id] = tl
	}
	tl.refs++
	l.mu.Unlock()

	tl.mu.Lock()
	return func() {
		tl.mu.Unlock()
		l.mu.Lock()
		tl.refs--
		if tl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
