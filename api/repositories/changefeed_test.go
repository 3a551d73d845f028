package repositories

import "testing"

func TestChangeFeedBroadcastReachesAllSubscribers(t *testing.T) {
	f := NewChangeFeed()
	ch1, release1 := f.Subscribe()
	ch2, release2 := f.Subscribe()
	defer release1()
	defer release2()

	f.Broadcast()

	select {
	case <-ch1:
	default:
		t.Error("first subscriber missed the broadcast")
	}
	select {
	case <-ch2:
	default:
		t.Error("second subscriber missed the broadcast")
	}
}

func TestChangeFeedCoalescesSignals(t *testing.T) {
	f := NewChangeFeed()
	ch, release := f.Subscribe()
	defer release()

	f.Broadcast()
	f.Broadcast()
	f.Broadcast()

	<-ch
	select {
	case <-ch:
		t.Error("expected at most one pending signal")
	default:
	}
}

func TestChangeFeedReleaseStopsDelivery(t *testing.T) {
	f := NewChangeFeed()
	ch, release := f.Subscribe()
	release()
	release() // harmless twice

	f.Broadcast()
	select {
	case <-ch:
		t.Error("released subscriber still received a signal")
	default:
	}
}

func TestChangeFeedBroadcastDoesNotBlock(t *testing.T) {
	f := NewChangeFeed()
	_, release := f.Subscribe()
	defer release()

	// Subscriber never drains; broadcasts must still return.
	for i := 0; i < 100; i++ {
		f.Broadcast()
	}
}
