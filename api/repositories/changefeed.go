package repositories

import "sync"

// ChangeFeed fans out a signal after every confirmed post write so live
// feed watchers can re-evaluate without waiting for their next poll.
// Signals are coalesced: a subscriber that has not drained its channel
// gets at most one pending signal.
type ChangeFeed struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[int]chan struct{})}
}

// Subscribe registers a listener. The returned func releases it; calling
// it more than once is harmless.
func (f *ChangeFeed) Subscribe() (<-chan struct{}, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan struct{}, 1)
	f.subs[id] = ch

	release := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
	return ch, release
}

// Broadcast signals every subscriber without blocking.
func (f *ChangeFeed) Broadcast() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
