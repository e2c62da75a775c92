package events

import "sync"

type EventType string

const (
	IssueCreated   EventType = "issue_created"
	IssueUpdated   EventType = "issue_updated"
	IssueDeleted   EventType = "issue_deleted"
	CommentCreated EventType = "comment_created"
)

// Event is a change notification scoped to a single project.
type Event struct {
	Type      EventType   `json:"type"`
	ProjectID uint        `json:"project_id"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Hub fans project events out to WebSocket subscribers. Publishing
// never blocks: a subscriber that cannot keep up has events dropped.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint]map[chan Event]struct{})}
}

// Subscribe registers a listener for one project. The returned cancel
// func closes the channel and removes the subscription.
func (h *Hub) Subscribe(projectID uint) (<-chan Event, func()) {
	ch := make(chan Event, 32)

	h.mu.Lock()
	if h.subs[projectID] == nil {
		h.subs[projectID] = make(map[chan Event]struct{})
	}
	h.subs[projectID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[projectID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, projectID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to all current subscribers of its project.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[evt.ProjectID] {
		select {
		case ch <- evt:
		default:
		}
	}
}
