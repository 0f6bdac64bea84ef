package worker

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type recordingJob struct {
	id   string
	done chan error
}

func (j *recordingJob) ID() string { return j.id }

func (j *recordingJob) Execute(ctx context.Context) error {
	err := ctx.Err()
	j.done <- err
	return err
}

func TestDispatcher_RunsSubmittedJobs(t *testing.T) {
	d := NewDispatcher(2, 8, testLogger())
	d.Run()
	defer d.Stop()

	job := &recordingJob{id: "job-1", done: make(chan error, 1)}
	require.True(t, d.Submit(context.Background(), job))

	select {
	case err := <-job.done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("job was never executed")
	}
}

func TestDispatcher_CancelledSubmissionSeesCancelledContext(t *testing.T) {
	d := NewDispatcher(1, 8, testLogger())
	d.Run()
	defer d.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := &recordingJob{id: "job-cancelled", done: make(chan error, 1)}
	require.True(t, d.Submit(ctx, job))

	select {
	case err := <-job.done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("job was never executed")
	}
}

func TestDispatcher_SubmitReportsFullQueue(t *testing.T) {
	// Dispatch loop intentionally not running, so the queue fills up.
	d := NewDispatcher(1, 1, testLogger())

	a := &recordingJob{id: "a", done: make(chan error, 1)}
	b := &recordingJob{id: "b", done: make(chan error, 1)}

	assert.True(t, d.Submit(context.Background(), a))
	assert.False(t, d.Submit(context.Background(), b))
}
