package models

// Segment is one chunk of narration script (1-2 sentences) intended for a
// single voice-synthesis call. Segments are derived wholesale from the
// script: every script edit recomputes them from scratch.
type Segment struct {
	ID          int     `json:"id"` // 1-based, sequential, no gaps
	Text        string  `json:"text"`
	AudioURL    *string `json:"audio_url,omitempty"` // Nil until audio is generated
	IsGenerated bool    `json:"is_generated"`
	Duration    float64 `json:"duration"` // Seconds, 0 until generated
}
