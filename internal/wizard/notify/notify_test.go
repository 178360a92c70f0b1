package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nocflow/internal/wizard/models"
)

func TestController(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		c := NewController()
		assert.Nil(t, c.Current())
	})

	t.Run("newest notification replaces the current one", func(t *testing.T) {
		c := NewController()
		c.Show(models.Notification{Kind: models.NotificationWarning, Title: "first"})
		c.Show(models.Notification{Kind: models.NotificationError, Title: "second"})

		n := c.Current()
		require.NotNil(t, n)
		assert.Equal(t, "second", n.Title)
	})

	t.Run("dismiss clears the slot", func(t *testing.T) {
		c := NewController()
		c.Show(models.Notification{Kind: models.NotificationInfo, Title: "hello"})
		c.Dismiss()
		assert.Nil(t, c.Current())

		// Dismissing an empty slot is a no-op.
		c.Dismiss()
		assert.Nil(t, c.Current())
	})

	t.Run("current returns a copy", func(t *testing.T) {
		c := NewController()
		c.Show(models.Notification{Kind: models.NotificationInfo, Title: "original"})

		n := c.Current()
		n.Title = "mutated"
		assert.Equal(t, "original", c.Current().Title)
	})

	t.Run("auto-close dismisses after the duration", func(t *testing.T) {
		c := NewController()
		c.Show(models.Notification{
			Kind:      models.NotificationSuccess,
			Title:     "submitted",
			AutoClose: 20 * time.Millisecond,
		})
		require.NotNil(t, c.Current())

		assert.Eventually(t, func() bool { return c.Current() == nil },
			time.Second, 5*time.Millisecond)
	})

	t.Run("replacement cancels a pending auto-close", func(t *testing.T) {
		c := NewController()
		c.Show(models.Notification{
			Kind:      models.NotificationSuccess,
			Title:     "closing",
			AutoClose: 20 * time.Millisecond,
		})
		c.Show(models.Notification{Kind: models.NotificationError, Title: "sticky"})

		time.Sleep(60 * time.Millisecond)
		n := c.Current()
		require.NotNil(t, n, "stale timer must not dismiss the replacement")
		assert.Equal(t, "sticky", n.Title)
	})
}
