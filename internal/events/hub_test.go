package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubDeliversToProjectSubscribers(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(10)
	defer cancel()
	otherCh, otherCancel := hub.Subscribe(20)
	defer otherCancel()

	hub.Publish(Event{Type: IssueCreated, ProjectID: 10})

	select {
	case evt := <-ch:
		assert.Equal(t, IssueCreated, evt.Type)
		assert.Equal(t, uint(10), evt.ProjectID)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}

	select {
	case evt := <-otherCh:
		t.Fatalf("subscriber of another project received %v", evt)
	default:
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(10)
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic or block.
	hub.Publish(Event{Type: IssueDeleted, ProjectID: 10})

	// Double cancel is a no-op.
	cancel()
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe(10)
	defer cancel()

	// Overflow the subscriber buffer without anyone reading.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(Event{Type: IssueUpdated, ProjectID: 10})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
