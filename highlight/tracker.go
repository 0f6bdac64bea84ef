// Package highlight manages the set of media assignments over the current
// script and enforces the no-overlap invariant. All operations are pure:
// they take the existing collection and return an updated copy, so callers
// can discard rejected proposals without rolling anything back.
package highlight

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"coursecraft/studio/models"
)

// Errors are returned as values so the UI layer can branch on them
// deterministically. Both are user errors, reported and discarded.
var (
	// ErrNotFound means the selection is empty or cannot be located in the
	// current script text (for example a stale selection after an edit).
	ErrNotFound = errors.New("selection not found in script")

	// ErrOverlap means the proposed range intersects an existing assignment.
	ErrOverlap = errors.New("selection overlaps an existing media assignment")
)

// Propose locates selectedText within script via first-occurrence substring
// search. Multiple occurrences are not disambiguated; only the first match
// is used. Prefer ProposeAt when the caller knows the selection offsets.
func Propose(script, selectedText string) (models.Range, error) {
	if selectedText == "" {
		return models.Range{}, ErrNotFound
	}
	idx := strings.Index(script, selectedText)
	if idx < 0 {
		return models.Range{}, ErrNotFound
	}
	return models.Range{Start: idx, End: idx + len(selectedText)}, nil
}

// ProposeAt validates caller-supplied half-open selection offsets against
// the script, for UI layers that track the real selection position instead
// of re-deriving it by substring search.
func ProposeAt(script string, start, end int) (models.Range, error) {
	if start < 0 || end > len(script) || start >= end {
		return models.Range{}, ErrNotFound
	}
	return models.Range{Start: start, End: end}, nil
}

// Overlaps reports whether candidate intersects any existing assignment's
// range. Touching boundaries do not count as overlap.
func Overlaps(assignments []models.MediaAssignment, candidate models.Range) bool {
	for _, a := range assignments {
		if candidate.Overlaps(a.Range) {
			return true
		}
	}
	return false
}

// Assign appends a new media assignment over candidate and returns the
// updated collection. On overlap it returns the input collection unchanged
// together with ErrOverlap; the caller surfaces a warning and mutates
// nothing.
func Assign(script string, assignments []models.MediaAssignment, candidate models.Range, mediaType models.MediaType, content string) ([]models.MediaAssignment, error) {
	if Overlaps(assignments, candidate) {
		return assignments, ErrOverlap
	}

	id := nextID()
	updated := make([]models.MediaAssignment, 0, len(assignments)+1)
	updated = append(updated, assignments...)
	updated = append(updated, models.MediaAssignment{
		ID:        id,
		Text:      script[candidate.Start:candidate.End],
		Type:      mediaType,
		Content:   content,
		Range:     candidate,
		Timestamp: id,
	})
	return updated, nil
}

// Remove deletes the assignment with the matching id. Removing an absent id
// is a no-op.
func Remove(assignments []models.MediaAssignment, id int64) []models.MediaAssignment {
	updated := make([]models.MediaAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ID != id {
			updated = append(updated, a)
		}
	}
	return updated
}

// Render walks the script left to right and emits plain-text spans for gaps
// and highlighted spans for each assignment, sorted by start offset.
// Concatenating the spans in order reconstructs script exactly.
func Render(script string, assignments []models.MediaAssignment) []models.Span {
	sorted := make([]models.MediaAssignment, len(assignments))
	copy(sorted, assignments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start < sorted[j].Range.Start
	})

	spans := make([]models.Span, 0, 2*len(sorted)+1)
	cursor := 0
	for _, a := range sorted {
		if a.Range.Start > cursor {
			spans = append(spans, models.Span{Kind: models.SpanText, Text: script[cursor:a.Range.Start]})
		}
		spans = append(spans, models.Span{
			Kind:         models.SpanHighlight,
			Text:         script[a.Range.Start:a.Range.End],
			Type:         a.Type,
			Content:      a.Content,
			AssignmentID: a.ID,
		})
		cursor = a.Range.End
	}
	if cursor < len(script) {
		spans = append(spans, models.Span{Kind: models.SpanText, Text: script[cursor:]})
	}
	return spans
}

// Highlights projects assignments into their rendering-facing form, sorted
// by start offset.
func Highlights(assignments []models.MediaAssignment) []models.HighlightRange {
	out := make([]models.HighlightRange, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.Highlight())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Assignment ids are timestamp-based but must stay unique even when two
// assignments land in the same millisecond.
var (
	idMu   sync.Mutex
	lastID int64
)

func nextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
