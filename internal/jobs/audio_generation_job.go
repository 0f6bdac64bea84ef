package jobs

import (
	"context"
	"fmt"

	"coursecraft/studio/internal/synthesis"
	"coursecraft/studio/models"
)

// AudioGenerationJob synthesizes audio for a batch of narration segments,
// one segment at a time. Updates are delivered through OnSegment strictly in
// segment order; a cancelled context stops the job between segments, leaving
// earlier results applied and later segments untouched.
type AudioGenerationJob struct {
	JobID    string
	Segments []models.Segment
	Synth    *synthesis.Client

	// OnSegment receives each segment as its audio finishes. Optional.
	OnSegment func(seg models.Segment)
	// OnProgress receives (completed, total) after each segment. Optional.
	OnProgress func(done, total int)
}

// NewAudioGenerationJob creates a job over a snapshot of segments.
func NewAudioGenerationJob(jobID string, segments []models.Segment, synth *synthesis.Client) *AudioGenerationJob {
	snapshot := make([]models.Segment, len(segments))
	copy(snapshot, segments)
	return &AudioGenerationJob{
		JobID:    jobID,
		Segments: snapshot,
		Synth:    synth,
	}
}

// ID returns the unique identifier of the job.
func (j *AudioGenerationJob) ID() string {
	return j.JobID
}

// Execute synthesizes each segment sequentially.
func (j *AudioGenerationJob) Execute(ctx context.Context) error {
	total := len(j.Segments)
	for i, seg := range j.Segments {
		generated, err := j.Synth.SynthesizeSegment(ctx, seg)
		if err != nil {
			return fmt.Errorf("audio generation stopped at segment %d/%d: %w", i+1, total, err)
		}
		if j.OnSegment != nil {
			j.OnSegment(generated)
		}
		if j.OnProgress != nil {
			j.OnProgress(i+1, total)
		}
	}
	return nil
}
