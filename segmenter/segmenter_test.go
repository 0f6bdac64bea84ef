package segmenter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_Example(t *testing.T) {
	segments := Split("A. B. C.")

	require.Len(t, segments, 2)
	assert.Equal(t, 1, segments[0].ID)
	assert.Equal(t, "A. B.", segments[0].Text)
	assert.Equal(t, 2, segments[1].ID)
	assert.Equal(t, "C.", segments[1].Text)
}

func TestSplit_EndToEndScript(t *testing.T) {
	script := "Welcome to the course. Today we cover hooks. Hooks simplify state. Let's begin."
	segments := Split(script)

	require.Len(t, segments, 2)
	assert.Equal(t, "Welcome to the course. Today we cover hooks.", segments[0].Text)
	assert.Equal(t, "Hooks simplify state. Let's begin.", segments[1].Text)
}

func TestSplit_EmptyAndPunctuationless(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("no punctuation here"))
}

func TestSplit_SingleSentence(t *testing.T) {
	segments := Split("Just one sentence!")

	require.Len(t, segments, 1)
	assert.Equal(t, 1, segments[0].ID)
	assert.Equal(t, "Just one sentence!", segments[0].Text)
}

func TestSplit_DropsTrailingTextWithoutTerminator(t *testing.T) {
	segments := Split("First sentence. And this trails off")

	require.Len(t, segments, 1)
	assert.Equal(t, "First sentence.", segments[0].Text)
}

func TestSplit_ChunkCountAndIDs(t *testing.T) {
	for n := 1; n <= 9; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "Sentence %d. ", i)
		}

		segments := Split(b.String())
		want := (n + 1) / 2
		require.Len(t, segments, want, "sentences=%d", n)
		for i, seg := range segments {
			assert.Equal(t, i+1, seg.ID)
			assert.NotEmpty(t, seg.Text)
			assert.False(t, seg.IsGenerated)
			assert.Nil(t, seg.AudioURL)
			assert.Zero(t, seg.Duration)
		}
	}
}

func TestSplit_MixedTerminators(t *testing.T) {
	segments := Split("Really? Yes! Definitely.")

	require.Len(t, segments, 2)
	assert.Equal(t, "Really? Yes!", segments[0].Text)
	assert.Equal(t, "Definitely.", segments[1].Text)
}

func TestSplit_Deterministic(t *testing.T) {
	script := "One. Two! Three? Four. Five."
	assert.Equal(t, Split(script), Split(script))
}

func TestEstimateDuration(t *testing.T) {
	assert.Zero(t, EstimateDuration(""))
	assert.Zero(t, EstimateDuration("   "))

	// 150 words per minute means 0.4 seconds per word.
	assert.InDelta(t, 2.0, EstimateDuration("one two three four five"), 0.001)
}
