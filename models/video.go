package models

import (
	"time"

	"github.com/google/uuid"
)

// Video status values.
const (
	VideoStatusDraft     = "draft"
	VideoStatusCompiling = "compiling"
	VideoStatusReady     = "ready"
)

// Video is a compiled (or compiling) narration video. The script, its
// segments and its media assignments are copied out of the editing session
// when the user confirms the compile step.
type Video struct {
	ID               uuid.UUID         `json:"id"`
	ProjectID        *uuid.UUID        `json:"project_id,omitempty"` // Nullable foreign key
	Title            string            `json:"title"`
	Description      *string           `json:"description,omitempty"`
	Script           string            `json:"script"`
	Segments         []Segment         `json:"segments,omitempty"`
	MediaAssignments []MediaAssignment `json:"media_assignments,omitempty"`
	AvatarID         *uuid.UUID        `json:"avatar_id,omitempty"`
	Status           string            `json:"status"`
	VideoURL         *string           `json:"video_url,omitempty"` // Nil until compiled
	Duration         float64           `json:"duration"`            // Seconds
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
