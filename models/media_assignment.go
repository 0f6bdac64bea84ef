package models

// MediaType enumerates the visual asset kinds a script range can be bound to.
type MediaType string

const (
	MediaTypeSlide      MediaType = "slide"
	MediaTypeStockVideo MediaType = "stock-video"
	MediaTypeUpload     MediaType = "upload"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeSlide, MediaTypeStockVideo, MediaTypeUpload:
		return true
	}
	return false
}

// Range is a half-open [Start, End) character span over the script.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two half-open ranges intersect. Touching
// boundaries (r.End == o.Start) do not count as overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// MediaAssignment binds a script character range to a visual asset. It is
// never mutated after creation, only deleted.
type MediaAssignment struct {
	ID        int64     `json:"id"` // Monotonic, timestamp-based
	Text      string    `json:"text"` // Substring captured at assignment time
	Type      MediaType `json:"type"`
	Content   string    `json:"content"` // Free-form description or asset reference
	Range     Range     `json:"range"`
	Timestamp int64     `json:"timestamp"`
}

// HighlightRange is the rendering-facing projection of a MediaAssignment,
// used to paint colored spans over the script editor.
type HighlightRange struct {
	Start   int       `json:"start"`
	End     int       `json:"end"`
	Type    MediaType `json:"type"`
	Content string    `json:"content"`
	ID      int64     `json:"id"` // Equal to the owning MediaAssignment's ID
}

// Highlight returns the assignment's rendering projection.
func (m MediaAssignment) Highlight() HighlightRange {
	return HighlightRange{
		Start:   m.Range.Start,
		End:     m.Range.End,
		Type:    m.Type,
		Content: m.Content,
		ID:      m.ID,
	}
}

// SpanKind distinguishes plain text from highlighted spans in render output.
type SpanKind string

const (
	SpanText      SpanKind = "text"
	SpanHighlight SpanKind = "highlight"
)

// Span is one slice of the script produced by rendering: either a plain-text
// gap or a highlighted media assignment. Concatenating all spans in order
// reconstructs the script exactly.
type Span struct {
	Kind         SpanKind  `json:"kind"`
	Text         string    `json:"text"`
	Type         MediaType `json:"type,omitempty"`
	Content      string    `json:"content,omitempty"`
	AssignmentID int64     `json:"assignment_id,omitempty"`
}
