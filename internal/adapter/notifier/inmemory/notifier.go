package inmemory

import (
	"sync"
	"time"
)

const defaultCapacity = 50

// Notification is a single toast-style message with the time it was shown.
type Notification struct {
	Message string    `json:"message"`
	ShownAt time.Time `json:"shown_at"`
}

// Notifier keeps the most recent notifications in a bounded ring so the
// HTTP surface can expose them for polling clients.
type Notifier struct {
	mu       sync.Mutex
	cap      int
	messages []Notification
	now      func() time.Time
}

func NewNotifier() *Notifier {
	return &Notifier{cap: defaultCapacity, now: time.Now}
}

func (n *Notifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, Notification{Message: message, ShownAt: n.now()})
	if len(n.messages) > n.cap {
		n.messages = n.messages[len(n.messages)-n.cap:]
	}
}

// RecentAny adapts Recent for the HTTP surface's provider interface.
func (n *Notifier) RecentAny() any {
	return n.Recent()
}

// Recent returns notifications newest-first.
func (n *Notifier) Recent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.messages))
	for i, m := range n.messages {
		out[len(n.messages)-1-i] = m
	}
	return out
}
