package economy

import (
	"sync"

	"github.com/disgoorg/gather-bot/gatherbot/account"
)

// accountLocks hands out one mutex per account key. Entries are reference
// counted and dropped once nobody holds or waits on them.
type accountLocks struct {
	mu    sync.Mutex
	locks map[account.Key]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[account.Key]*accountLock)}
}

// lock blocks until key is free and returns its release func.
func (l *accountLocks) lock(key account.Key) func() {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &accountLock{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

func (l *accountLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
