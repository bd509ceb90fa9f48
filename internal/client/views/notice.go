package views

import (
	"sync"
	"time"
)

// DefaultNoticeDuration is how long a success notice stays visible.
const DefaultNoticeDuration = 3 * time.Second

// Notice is a transient message that hides itself after a delay.
// It is safe for concurrent use.
type Notice struct {
	mu      sync.Mutex
	timer   *time.Timer
	text    string
	visible bool
	gen     uint64
}

// Show displays text and schedules it to hide after d. A non-positive d
// keeps the notice until Dismiss. Showing again restarts the delay.
func (n *Notice) Show(text string, d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.gen++
	n.text = text
	n.visible = true

	if d <= 0 {
		return
	}

	gen := n.gen
	n.timer = time.AfterFunc(d, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// a newer Show owns the notice now
		if n.gen != gen {
			return
		}
		n.visible = false
		n.timer = nil
	})
}

// Dismiss hides the notice and cancels a pending expiry.
func (n *Notice) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.gen++
	n.visible = false
}

func (n *Notice) stopLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notice) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

// Text returns the current message, or "" when hidden.
func (n *Notice) Text() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.visible {
		return ""
	}
	return n.text
}
