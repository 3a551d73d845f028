package feed

import (
	"sync"
	"time"

	"github.com/deepthansh-m/WhisperNet/api/models"
)

// PostSource is the slice of the store the watcher needs.
type PostSource interface {
	QueryPostsSince(cutoffMillis int64) ([]models.Post, error)
}

// Notifier signals that the store changed. Subscribe returns a channel
// that receives after confirmed writes, plus a release func.
type Notifier interface {
	Subscribe() (<-chan struct{}, func())
}

// Watcher turns the snapshot store into a live feed: each subscription
// re-queries and recomputes on an interval and immediately after store
// change signals, delivering full snapshots like a push listener would.
type Watcher struct {
	source   PostSource
	notifier Notifier
	interval time.Duration
	now      func() time.Time
}

func NewWatcher(source PostSource, notifier Notifier, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Watcher{source: source, notifier: notifier, interval: interval, now: time.Now}
}

// Subscription is one live feed. Cancel is idempotent and does not return
// until the delivery goroutine has exited, so no callback fires after it.
type Subscription struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func (s *Subscription) Cancel() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// Subscribe starts a live feed for the viewer. onSnapshot receives the
// computed feed after every evaluation; on a store failure it receives the
// last good snapshot (possibly nil) together with the error, never a
// silent drop. An initial snapshot is delivered right away.
func (w *Watcher) Subscribe(viewer models.SubscriberContext, onSnapshot func([]models.Post, error)) *Subscription {
	sub := &Subscription{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	var changed <-chan struct{}
	release := func() {}
	if w.notifier != nil {
		changed, release = w.notifier.Subscribe()
	}

	go func() {
		defer close(sub.done)
		defer release()

		var last []models.Post
		deliver := func() {
			posts, err := w.source.QueryPostsSince(CutoffMillis(w.now()))
			if err != nil {
				onSnapshot(last, err)
				return
			}
			last = ComputeFeed(posts, viewer, w.now())
			onSnapshot(last, nil)
		}

		deliver()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-sub.stop:
				return
			case <-ticker.C:
				deliver()
			case <-changed:
				deliver()
			}
		}
	}()

	return sub
}
