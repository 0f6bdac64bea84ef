package jobs

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecraft/studio/internal/synthesis"
	"coursecraft/studio/models"
	"coursecraft/studio/segmenter"
)

func testSynth(delay time.Duration) *synthesis.Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return synthesis.NewClient(delay, log)
}

func TestAudioGenerationJob_GeneratesInOrder(t *testing.T) {
	segments := segmenter.Split("One. Two. Three. Four. Five. Six.")
	require.Len(t, segments, 3)

	job := NewAudioGenerationJob("audio-1", segments, testSynth(time.Millisecond))

	var seen []int
	var progress []int
	job.OnSegment = func(seg models.Segment) {
		assert.True(t, seg.IsGenerated)
		require.NotNil(t, seg.AudioURL)
		assert.Greater(t, seg.Duration, 0.0)
		seen = append(seen, seg.ID)
	}
	job.OnProgress = func(done, total int) {
		assert.Equal(t, 3, total)
		progress = append(progress, done)
	}

	require.NoError(t, job.Execute(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, seen, "segment updates must arrive in order")
	assert.Equal(t, []int{1, 2, 3}, progress, "progress must be strictly increasing")
}

func TestAudioGenerationJob_CancelledMidRun(t *testing.T) {
	segments := segmenter.Split("One. Two. Three. Four. Five. Six.")
	job := NewAudioGenerationJob("audio-2", segments, testSynth(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	applied := 0
	job.OnSegment = func(models.Segment) {
		applied++
		cancel() // simulate closing the editor after the first segment
	}

	err := job.Execute(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, applied, "cancellation must stop further segment updates")
}

func TestVideoCompileJob_ProgressAndCompletion(t *testing.T) {
	videoID := uuid.New()
	job := NewVideoCompileJob("compile-1", videoID, 4, time.Millisecond)

	var progress []float64
	var url string
	job.OnProgress = func(pct float64) { progress = append(progress, pct) }
	job.OnComplete = func(videoURL string) { url = videoURL }

	require.NoError(t, job.Execute(context.Background()))

	require.Len(t, progress, 4)
	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1])
	}
	assert.Equal(t, 100.0, progress[len(progress)-1])
	assert.Contains(t, url, videoID.String())
}

func TestVideoCompileJob_CancelledBeforeStart(t *testing.T) {
	job := NewVideoCompileJob("compile-2", uuid.New(), 4, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	completed := false
	job.OnComplete = func(string) { completed = true }

	err := job.Execute(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, completed)
}

func TestLessonPlanJob_SectionsInOrder(t *testing.T) {
	courseID := uuid.New()
	job := NewLessonPlanJob("plan-1", courseID, "Intro to Go", time.Millisecond)

	var sections []models.LessonSection
	var final []models.LessonSection
	job.OnSection = func(s models.LessonSection) { sections = append(sections, s) }
	job.OnComplete = func(plan []models.LessonSection) { final = plan }

	require.NoError(t, job.Execute(context.Background()))

	require.Len(t, final, 5)
	assert.Equal(t, sections, final)
	assert.Equal(t, "Introduction", final[0].Title)
	assert.Contains(t, final[0].Summary, "Intro to Go")
	for _, s := range final {
		assert.Greater(t, s.DurationMinutes, 0)
	}
}
