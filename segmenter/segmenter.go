// Package segmenter splits a narration script into segments suitable for
// independent voice-synthesis calls. Splitting is pure and deterministic:
// the same script always yields the same segments.
package segmenter

import (
	"regexp"
	"strings"

	"coursecraft/studio/models"
)

// A sentence is a maximal run of non-terminator characters followed by one
// or more of ". ! ?". Trailing text with no terminator is dropped.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// SentencesPerSegment is how many consecutive sentences are grouped into one
// narration segment. The final segment may hold fewer.
const SentencesPerSegment = 2

// Narration pace used to estimate segment durations.
const wordsPerMinute = 150

// Split breaks script into ordered narration segments: sentences extracted
// by terminal punctuation, grouped two at a time, joined with a single space
// and trimmed. IDs are 1-based and sequential with no gaps. An empty or
// punctuation-less script yields no segments.
func Split(script string) []models.Segment {
	sentences := sentencePattern.FindAllString(script, -1)

	segments := make([]models.Segment, 0, (len(sentences)+SentencesPerSegment-1)/SentencesPerSegment)
	for i := 0; i < len(sentences); i += SentencesPerSegment {
		end := i + SentencesPerSegment
		if end > len(sentences) {
			end = len(sentences)
		}

		parts := make([]string, 0, end-i)
		for _, sentence := range sentences[i:end] {
			parts = append(parts, strings.TrimSpace(sentence))
		}
		text := strings.TrimSpace(strings.Join(parts, " "))
		if text == "" {
			continue
		}

		segments = append(segments, models.Segment{
			ID:   len(segments) + 1,
			Text: text,
		})
	}
	return segments
}

// EstimateDuration returns the expected narration length of text in seconds,
// based on a fixed words-per-minute pace.
func EstimateDuration(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return float64(words) * 60.0 / wordsPerMinute
}
