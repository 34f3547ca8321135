package notify

import "testing"

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	h := NewHub()

	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	h.Publish()

	for i, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %d did not receive signal", i)
		}
	}
}

func TestHub_PublishSkipsFullSubscribers(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Publish()
	h.Publish() // must not block on the full buffer
	h.Publish()

	<-ch
	select {
	case <-ch:
		t.Error("expected only one pending signal")
	default:
	}
}

func TestHub_CancelClosesChannel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()

	cancel()
	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed after cancel")
	}
	if h.Len() != 0 {
		t.Errorf("expected 0 subscribers, got %d", h.Len())
	}

	// Cancel is idempotent.
	cancel()
}

func TestHub_PublishAfterCancel(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	cancel()

	// Must not panic on a closed/removed subscriber.
	h.Publish()
}
