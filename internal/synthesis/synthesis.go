// Package synthesis simulates the external voice-synthesis service. Every
// call blocks for a fixed configurable latency and then unconditionally
// succeeds with a synthetic audio reference; there is no real audio
// processing behind it.
package synthesis

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"coursecraft/studio/models"
	"coursecraft/studio/segmenter"
)

// Client issues simulated synthesis calls.
type Client struct {
	delay time.Duration
	log   *logrus.Logger
}

// NewClient returns a client with the given per-call latency.
func NewClient(delay time.Duration, log *logrus.Logger) *Client {
	return &Client{delay: delay, log: log}
}

// SynthesizeSegment renders one narration segment to a (fake) audio asset.
// It blocks for the configured latency, honoring ctx cancellation between
// nothing and everything: a cancelled call leaves the segment untouched.
func (c *Client) SynthesizeSegment(ctx context.Context, seg models.Segment) (models.Segment, error) {
	select {
	case <-ctx.Done():
		return seg, ctx.Err()
	case <-time.After(c.delay):
	}

	url := fmt.Sprintf("synthetic://audio/segment-%d-%d.mp3", seg.ID, time.Now().UnixMilli())
	seg.AudioURL = &url
	seg.IsGenerated = true
	seg.Duration = segmenter.EstimateDuration(seg.Text)

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"segment_id": seg.ID,
			"duration_s": seg.Duration,
		}).Debug("Synthesized segment audio")
	}
	return seg, nil
}

// Wait blocks for one simulated work step or until ctx is cancelled. Jobs
// that fake multi-step progress (compile, lesson plan) use it between state
// updates.
func Wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
