package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecraft/studio/models"
)

const script = "Welcome to the course. Today we cover hooks. Hooks simplify state. Let's begin."

func TestPropose_FirstOccurrence(t *testing.T) {
	r, err := Propose("abc abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Range{Start: 0, End: 3}, r)
}

func TestPropose_EmptyOrMissing(t *testing.T) {
	_, err := Propose(script, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Propose(script, "not in the script")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProposeAt_Bounds(t *testing.T) {
	r, err := ProposeAt(script, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, models.Range{Start: 0, End: 7}, r)

	_, err = ProposeAt(script, -1, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ProposeAt(script, 5, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ProposeAt(script, 0, len(script)+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssign_OverlapRejected(t *testing.T) {
	ranges, err := Assign(script, nil, models.Range{Start: 5, End: 10}, models.MediaTypeSlide, "intro slide")
	require.NoError(t, err)
	require.Len(t, ranges, 1)

	before := append([]models.MediaAssignment(nil), ranges...)
	after, err := Assign(script, ranges, models.Range{Start: 8, End: 12}, models.MediaTypeUpload, "clip")
	assert.ErrorIs(t, err, ErrOverlap)
	assert.Equal(t, before, after, "rejected assignment must leave the set unchanged")
}

func TestAssign_TouchingBoundariesAllowed(t *testing.T) {
	ranges, err := Assign(script, nil, models.Range{Start: 5, End: 10}, models.MediaTypeSlide, "a")
	require.NoError(t, err)

	ranges, err = Assign(script, ranges, models.Range{Start: 10, End: 15}, models.MediaTypeStockVideo, "b")
	require.NoError(t, err)
	assert.Len(t, ranges, 2)
}

func TestAssign_CapturesTextAndUniqueIDs(t *testing.T) {
	ranges, err := Assign(script, nil, models.Range{Start: 0, End: 7}, models.MediaTypeSlide, "title card")
	require.NoError(t, err)

	ranges, err = Assign(script, ranges, models.Range{Start: 8, End: 10}, models.MediaTypeUpload, "logo")
	require.NoError(t, err)

	assert.Equal(t, "Welcome", ranges[0].Text)
	assert.Equal(t, ranges[0].ID, ranges[0].Timestamp)
	assert.Greater(t, ranges[1].ID, ranges[0].ID)
}

func TestRemove_Idempotent(t *testing.T) {
	ranges, err := Assign(script, nil, models.Range{Start: 5, End: 10}, models.MediaTypeSlide, "a")
	require.NoError(t, err)
	id := ranges[0].ID

	once := Remove(ranges, id)
	twice := Remove(once, id)
	assert.Empty(t, once)
	assert.Equal(t, once, twice)

	// Removing an id that never existed is a no-op too.
	assert.Equal(t, ranges, Remove(ranges, id+999))
}

func TestRender_RoundTrip(t *testing.T) {
	ranges, err := Assign(script, nil, models.Range{Start: 23, End: 44}, models.MediaTypeSlide, "hooks slide")
	require.NoError(t, err)
	ranges, err = Assign(script, ranges, models.Range{Start: 0, End: 7}, models.MediaTypeUpload, "welcome")
	require.NoError(t, err)
	ranges, err = Assign(script, ranges, models.Range{Start: 67, End: len(script)}, models.MediaTypeStockVideo, "outro")
	require.NoError(t, err)

	spans := Render(script, ranges)

	var rebuilt strings.Builder
	for _, span := range spans {
		rebuilt.WriteString(span.Text)
		if span.Kind == models.SpanHighlight {
			assert.Greater(t, span.AssignmentID, int64(0))
			assert.NotEmpty(t, span.Text)
		}
	}
	assert.Equal(t, script, rebuilt.String(), "concatenated spans must reproduce the script exactly")
}

func TestRender_NoRanges(t *testing.T) {
	spans := Render(script, nil)
	require.Len(t, spans, 1)
	assert.Equal(t, models.SpanText, spans[0].Kind)
	assert.Equal(t, script, spans[0].Text)
}

func TestRender_EmptyScript(t *testing.T) {
	assert.Empty(t, Render("", nil))
}

func TestEndToEndScenario(t *testing.T) {
	r, err := Propose(script, "Hooks simplify state.")
	require.NoError(t, err)

	ranges, err := Assign(script, nil, r, models.MediaTypeSlide, "state slide")
	require.NoError(t, err)
	require.Len(t, ranges, 1)

	r2, err := Propose(script, "simplify state. Let's")
	require.NoError(t, err)

	_, err = Assign(script, ranges, r2, models.MediaTypeUpload, "clip")
	assert.ErrorIs(t, err, ErrOverlap)
	assert.Len(t, ranges, 1)
}

func TestHighlights_SortedProjection(t *testing.T) {
	ranges, err := Assign(script, nil, models.Range{Start: 40, End: 44}, models.MediaTypeSlide, "late")
	require.NoError(t, err)
	ranges, err = Assign(script, ranges, models.Range{Start: 0, End: 7}, models.MediaTypeUpload, "early")
	require.NoError(t, err)

	hs := Highlights(ranges)
	require.Len(t, hs, 2)
	assert.Equal(t, 0, hs[0].Start)
	assert.Equal(t, 40, hs[1].Start)
	assert.Equal(t, ranges[1].ID, hs[0].ID)
}
