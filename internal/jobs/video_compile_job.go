package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coursecraft/studio/internal/synthesis"
)

// VideoCompileJob fakes the multi-step video compilation pipeline with a
// fixed number of delay-then-update steps. Progress callbacks are invoked in
// strictly increasing order; cancellation between steps abandons the
// compile.
type VideoCompileJob struct {
	JobID     string
	VideoID   uuid.UUID
	Steps     int
	StepDelay time.Duration

	// OnProgress receives the percentage (0-100] after each step. Optional.
	OnProgress func(pct float64)
	// OnComplete receives the synthetic output URL once all steps are done.
	// Optional.
	OnComplete func(videoURL string)
}

// NewVideoCompileJob creates a compile job for one video.
func NewVideoCompileJob(jobID string, videoID uuid.UUID, steps int, stepDelay time.Duration) *VideoCompileJob {
	return &VideoCompileJob{
		JobID:     jobID,
		VideoID:   videoID,
		Steps:     steps,
		StepDelay: stepDelay,
	}
}

// ID returns the unique identifier of the job.
func (j *VideoCompileJob) ID() string {
	return j.JobID
}

// Execute walks the simulated pipeline steps.
func (j *VideoCompileJob) Execute(ctx context.Context) error {
	for step := 1; step <= j.Steps; step++ {
		if err := synthesis.Wait(ctx, j.StepDelay); err != nil {
			return fmt.Errorf("compile stopped at step %d/%d: %w", step, j.Steps, err)
		}
		if j.OnProgress != nil {
			j.OnProgress(100 * float64(step) / float64(j.Steps))
		}
	}
	if j.OnComplete != nil {
		j.OnComplete(fmt.Sprintf("synthetic://video/%s.mp4", j.VideoID))
	}
	return nil
}
