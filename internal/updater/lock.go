package updater

import "sync"

// keyedLock hands out one mutex per key. Entries are reference counted
// and removed as soon as nobody holds or waits for them.
type keyedLock struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{mu: sync.Mutex{}, entries: map[string]*lockEntry{}}
}

// lock blocks until the key is free and returns the function that releases it.
func (k *keyedLock) lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &lockEntry{mu: sync.Mutex{}, refs: 0}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}

// size is the number of keys currently held or waited for.
func (k *keyedLock) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
