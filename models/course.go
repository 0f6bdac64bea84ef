package models

import (
	"time"

	"github.com/google/uuid"
)

// LessonSection is one entry of a generated lesson plan.
type LessonSection struct {
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Course is a published learning unit: metadata plus an optional generated
// lesson plan and the videos attached to it.
type Course struct {
	ID          uuid.UUID       `json:"id"`
	ProjectID   *uuid.UUID      `json:"project_id,omitempty"` // Nullable foreign key
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category,omitempty"`
	LessonPlan  []LessonSection `json:"lesson_plan,omitempty"` // Nil until generated
	VideoIDs    []uuid.UUID     `json:"video_ids,omitempty"`
	IsPublished bool            `json:"is_published"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
