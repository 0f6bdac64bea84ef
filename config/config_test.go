package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, 64, cfg.JobQueueSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.SynthesisDelay)
	assert.Equal(t, 10, cfg.CompileSteps)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STUDIO_WORKERS", "7")
	t.Setenv("STUDIO_SYNTHESIS_DELAY", "25ms")
	t.Setenv("STUDIO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.WorkerCount)
	assert.Equal(t, 25*time.Millisecond, cfg.SynthesisDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("STUDIO_WORKERS", "not-a-number")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STUDIO_WORKERS", "0")
	_, err = Load()
	assert.Error(t, err)
}
