package models

import (
	"time"

	"github.com/google/uuid"
)

// Avatar is a presenter persona selectable in the video wizard.
type Avatar struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Style      *string   `json:"style,omitempty"`
	PreviewURL *string   `json:"preview_url,omitempty"`
	VoiceID    *string   `json:"voice_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
