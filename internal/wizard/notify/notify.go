// Package notify holds the single-slot transient notification queue. The
// newest notification always wins: no history, no stacking.
package notify

import (
	"sync"
	"time"

	"nocflow/internal/wizard/models"
)

// Controller owns at most one live notification. Show replaces the current
// one, Dismiss clears it, and a notification with AutoClose set dismisses
// itself after that duration unless replaced or dismissed first.
type Controller struct {
	mu      sync.Mutex
	current *models.Notification
	timer   *time.Timer
	// seq invalidates a pending auto-close when the slot changes before the
	// timer fires.
	seq uint64
}

func NewController() *Controller {
	return &Controller{}
}

// Show replaces any current notification.
func (c *Controller) Show(n models.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replaceLocked(&n)
	if n.AutoClose > 0 {
		seq := c.seq
		c.timer = time.AfterFunc(n.AutoClose, func() {
			c.dismissIfCurrent(seq)
		})
	}
}

// Dismiss clears the current notification, if any.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replaceLocked(nil)
}

// Current returns a copy of the live notification, or nil when the slot is
// empty.
func (c *Controller) Current() *models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	n := *c.current
	return &n
}

func (c *Controller) replaceLocked(n *models.Notification) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++
	c.current = n
}

func (c *Controller) dismissIfCurrent(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq != seq {
		return // slot changed since the timer was armed
	}
	c.current = nil
	c.timer = nil
}
