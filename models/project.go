package models

import (
	"time"

	"github.com/google/uuid"
)

// Project groups related videos and courses on the dashboard.
type Project struct {
	ID           uuid.UUID  `json:"id,omitempty"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`   // Use a pointer for optional fields
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	OwnerID      *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
