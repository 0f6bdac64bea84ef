package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coursecraft/studio/internal/synthesis"
	"coursecraft/studio/models"
)

// Lesson plans follow a fixed scaffold; the simulator fills titles in from
// the course name one section at a time.
var lessonScaffold = []struct {
	title   string
	minutes int
}{
	{"Introduction", 5},
	{"Core Concepts", 15},
	{"Worked Examples", 20},
	{"Practice & Review", 15},
	{"Summary & Next Steps", 5},
}

// LessonPlanJob generates a lesson plan for a course, appending one section
// per simulated delay so the UI can render the plan growing. Sections are
// delivered in order; cancellation keeps the sections produced so far.
type LessonPlanJob struct {
	JobID        string
	CourseID     uuid.UUID
	CourseTitle  string
	SectionDelay time.Duration

	// OnSection receives each generated section as it is produced. Optional.
	OnSection func(section models.LessonSection)
	// OnComplete receives the full plan once generation finishes. Optional.
	OnComplete func(plan []models.LessonSection)
}

// NewLessonPlanJob creates a lesson-plan job for one course.
func NewLessonPlanJob(jobID string, courseID uuid.UUID, courseTitle string, sectionDelay time.Duration) *LessonPlanJob {
	return &LessonPlanJob{
		JobID:        jobID,
		CourseID:     courseID,
		CourseTitle:  courseTitle,
		SectionDelay: sectionDelay,
	}
}

// ID returns the unique identifier of the job.
func (j *LessonPlanJob) ID() string {
	return j.JobID
}

// Execute produces the scaffold sections sequentially.
func (j *LessonPlanJob) Execute(ctx context.Context) error {
	plan := make([]models.LessonSection, 0, len(lessonScaffold))
	for i, entry := range lessonScaffold {
		if err := synthesis.Wait(ctx, j.SectionDelay); err != nil {
			return fmt.Errorf("lesson plan stopped at section %d/%d: %w", i+1, len(lessonScaffold), err)
		}
		section := models.LessonSection{
			Title:           entry.title,
			Summary:         fmt.Sprintf("%s for %q", entry.title, j.CourseTitle),
			DurationMinutes: entry.minutes,
		}
		plan = append(plan, section)
		if j.OnSection != nil {
			j.OnSection(section)
		}
	}
	if j.OnComplete != nil {
		j.OnComplete(plan)
	}
	return nil
}
