package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime tuning for the studio engine. Everything is loaded
// from the environment; a .env file in the working directory is honored but
// optional, and real environment variables win over it.
type Config struct {
	WorkerCount  int           // STUDIO_WORKERS
	JobQueueSize int           // STUDIO_JOB_QUEUE_SIZE
	LogLevel     string        // STUDIO_LOG_LEVEL

	// Simulated latencies standing in for external generation services.
	SynthesisDelay     time.Duration // STUDIO_SYNTHESIS_DELAY
	CompileStepDelay   time.Duration // STUDIO_COMPILE_STEP_DELAY
	CompileSteps       int           // STUDIO_COMPILE_STEPS
	LessonSectionDelay time.Duration // STUDIO_LESSON_SECTION_DELAY
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file just means plain env vars.
	_ = godotenv.Load()

	cfg := &Config{
		WorkerCount:        3,
		JobQueueSize:       64,
		LogLevel:           "info",
		SynthesisDelay:     1500 * time.Millisecond,
		CompileStepDelay:   400 * time.Millisecond,
		CompileSteps:       10,
		LessonSectionDelay: 800 * time.Millisecond,
	}

	var err error
	if cfg.WorkerCount, err = envInt("STUDIO_WORKERS", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.JobQueueSize, err = envInt("STUDIO_JOB_QUEUE_SIZE", cfg.JobQueueSize); err != nil {
		return nil, err
	}
	if v := os.Getenv("STUDIO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if cfg.SynthesisDelay, err = envDuration("STUDIO_SYNTHESIS_DELAY", cfg.SynthesisDelay); err != nil {
		return nil, err
	}
	if cfg.CompileStepDelay, err = envDuration("STUDIO_COMPILE_STEP_DELAY", cfg.CompileStepDelay); err != nil {
		return nil, err
	}
	if cfg.CompileSteps, err = envInt("STUDIO_COMPILE_STEPS", cfg.CompileSteps); err != nil {
		return nil, err
	}
	if cfg.LessonSectionDelay, err = envDuration("STUDIO_LESSON_SECTION_DELAY", cfg.LessonSectionDelay); err != nil {
		return nil, err
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("STUDIO_WORKERS must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.CompileSteps < 1 {
		return nil, fmt.Errorf("STUDIO_COMPILE_STEPS must be at least 1, got %d", cfg.CompileSteps)
	}
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
