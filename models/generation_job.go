package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle stage of a generation job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Job type tags.
const (
	JobTypeAudioGeneration = "audio_generation"
	JobTypeVideoCompile    = "video_compile"
	JobTypeLessonPlan      = "lesson_plan"
)

// GenerationJob records one simulated background operation so admin and
// analytics screens can render queue state and progress.
type GenerationJob struct {
	ID           uuid.UUID  `json:"id"`
	JobType      string     `json:"job_type"`
	EntityID     uuid.UUID  `json:"entity_id"`
	Status       JobStatus  `json:"status"`
	Progress     float64    `json:"progress"` // 0-100
	ErrorMessage *string    `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// IsDone reports whether the job reached a terminal state.
func (j GenerationJob) IsDone() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed || j.Status == JobStatusCancelled
}
