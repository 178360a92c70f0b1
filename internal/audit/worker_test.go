package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorkerPublishesEvents(t *testing.T) {
	inbox := make(chan Event, 8)
	recorder := NewRecorder()
	worker := NewWorker(recorder, inbox, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	inbox <- Event{ID: "e1", ApplicantID: "a1", Action: ActionDraftSaved, SectionID: "declaration"}
	inbox <- Event{ID: "e2", ApplicantID: "a1", Action: ActionSubmissionSucceeded, Outcome: "success"}

	require.Eventually(t, func() bool { return len(recorder.Events()) == 2 },
		time.Second, 5*time.Millisecond)

	events := recorder.Events()
	assert.Equal(t, ActionDraftSaved, events[0].Action)
	assert.Equal(t, ActionSubmissionSucceeded, events[1].Action)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, Event) error {
	return errors.New("broker down")
}

func TestWorkerSurvivesPublishFailures(t *testing.T) {
	inbox := make(chan Event, 8)
	worker := NewWorker(failingPublisher{}, inbox, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	inbox <- Event{ID: "e1", Action: ActionDraftSaved}
	inbox <- Event{ID: "e2", Action: ActionSectionCompleted}

	err := worker.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
