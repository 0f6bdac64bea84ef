package models

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgePackage bundles courses and videos for handover to another team
// or learner cohort ("knowledge transfer").
type KnowledgePackage struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	AuthorID    *uuid.UUID  `json:"author_id,omitempty"`
	CourseIDs   []uuid.UUID `json:"course_ids,omitempty"`
	VideoIDs    []uuid.UUID `json:"video_ids,omitempty"`
	IsShared    bool        `json:"is_shared"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
