// Package session owns the state of one in-progress video-creation form:
// the script, the narration segments derived from it, and the media
// assignments highlighted over it. Nothing here persists beyond the
// session; compiling copies the result into the store as a Video record.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"coursecraft/studio/config"
	"coursecraft/studio/highlight"
	"coursecraft/studio/internal/jobs"
	"coursecraft/studio/internal/synthesis"
	"coursecraft/studio/internal/worker"
	"coursecraft/studio/models"
	"coursecraft/studio/segmenter"
	"coursecraft/studio/store"
	"coursecraft/studio/utils"
)

// ErrNoSegments means the script has no narration segments to work with.
var ErrNoSegments = errors.New("script has no narration segments")

// Session is safe for use from UI callbacks and job callbacks concurrently;
// all state transitions run to completion under one mutex.
type Session struct {
	mu          sync.Mutex
	id          uuid.UUID
	script      string
	segments    []models.Segment
	assignments []models.MediaAssignment
	jobSeq      int

	store      *store.Store
	dispatcher *worker.Dispatcher
	synth      *synthesis.Client
	cfg        *config.Config
	log        *logrus.Logger
	validate   *validator.Validate

	// Cancelling ctx halts every in-flight generation queued by this
	// session, including jobs still waiting in the queue.
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates an empty editing session.
func New(st *store.Store, dispatcher *worker.Dispatcher, synth *synthesis.Client, cfg *config.Config, log *logrus.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:         uuid.New(),
		store:      st,
		dispatcher: dispatcher,
		synth:      synth,
		cfg:        cfg,
		log:        log,
		validate:   validator.New(),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Close cancels every generation job this session has queued or started.
// Closing twice is harmless.
func (s *Session) Close() {
	s.cancel()
}

// Script returns the current script text.
func (s *Session) Script() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.script
}

// Segments returns a copy of the current narration segments.
func (s *Session) Segments() []models.Segment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Assignments returns a copy of the current media assignments.
func (s *Session) Assignments() []models.MediaAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MediaAssignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// Highlights returns the assignments' rendering projections sorted by start.
func (s *Session) Highlights() []models.HighlightRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return highlight.Highlights(s.assignments)
}

// RenderSpans slices the script into plain and highlighted spans.
func (s *Session) RenderSpans() []models.Span {
	s.mu.Lock()
	defer s.mu.Unlock()
	return highlight.Render(s.script, s.assignments)
}

// SetScript replaces the script wholesale and recomputes the segments from
// scratch. Segments whose text is unchanged keep their generated audio;
// everything else resets. Assignments whose captured text no longer matches
// the script at their recorded range are pruned as stale.
func (s *Session) SetScript(script string) []models.Segment {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Index previously generated audio by segment text. Duplicate texts are
	// consumed in order so one take is never reused twice.
	generated := make(map[string][]models.Segment)
	for _, seg := range s.segments {
		if seg.IsGenerated {
			generated[seg.Text] = append(generated[seg.Text], seg)
		}
	}

	segments := segmenter.Split(script)
	for i := range segments {
		if takes := generated[segments[i].Text]; len(takes) > 0 {
			prev := takes[0]
			generated[segments[i].Text] = takes[1:]
			segments[i].AudioURL = prev.AudioURL
			segments[i].IsGenerated = true
			segments[i].Duration = prev.Duration
		}
	}

	kept := make([]models.MediaAssignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		if a.Range.End <= len(script) && script[a.Range.Start:a.Range.End] == a.Text {
			kept = append(kept, a)
		}
	}
	if dropped := len(s.assignments) - len(kept); dropped > 0 {
		s.log.WithFields(logrus.Fields{
			"session_id": s.id,
			"dropped":    dropped,
		}).Info("Pruned stale media assignments after script edit")
	}

	s.script = script
	s.segments = segments
	s.assignments = kept

	out := make([]models.Segment, len(segments))
	copy(out, segments)
	return out
}

// AssignMediaRequest is the confirm step of the media-assignment popover.
type AssignMediaRequest struct {
	SelectedText string           `validate:"required"`
	Type         models.MediaType `validate:"required,oneof=slide stock-video upload"`
	Content      string           `validate:"required"`
}

// AssignMedia locates the selection in the script (first occurrence) and
// binds it to a media asset. Overlap and not-found failures are returned as
// values with no state change.
func (s *Session) AssignMedia(req AssignMediaRequest) (models.MediaAssignment, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.MediaAssignment{}, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, err := highlight.Propose(s.script, req.SelectedText)
	if err != nil {
		return models.MediaAssignment{}, err
	}
	return s.assignLocked(candidate, req.Type, req.Content)
}

// AssignMediaAt binds the half-open range [start, end) to a media asset,
// for callers that track the real selection offsets.
func (s *Session) AssignMediaAt(start, end int, mediaType models.MediaType, content string) (models.MediaAssignment, error) {
	if !mediaType.Valid() {
		return models.MediaAssignment{}, fmt.Errorf("unknown media type %q", mediaType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, err := highlight.ProposeAt(s.script, start, end)
	if err != nil {
		return models.MediaAssignment{}, err
	}
	return s.assignLocked(candidate, mediaType, content)
}

func (s *Session) assignLocked(candidate models.Range, mediaType models.MediaType, content string) (models.MediaAssignment, error) {
	updated, err := highlight.Assign(s.script, s.assignments, candidate, mediaType, content)
	if err != nil {
		return models.MediaAssignment{}, err
	}
	s.assignments = updated
	created := updated[len(updated)-1]

	s.log.WithFields(logrus.Fields{
		"session_id":    s.id,
		"assignment_id": created.ID,
		"type":          created.Type,
		"start":         created.Range.Start,
		"end":           created.Range.End,
	}).Info("Media assigned")
	return created, nil
}

// RemoveAssignment deletes the assignment with the given id. Removing an
// absent id is a no-op.
func (s *Session) RemoveAssignment(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = highlight.Remove(s.assignments, id)
}

// GenerateAudio queues simulated synthesis for every segment that does not
// have audio yet. It returns the id of the store's job record.
func (s *Session) GenerateAudio() (uuid.UUID, error) {
	s.mu.Lock()
	pending := make([]models.Segment, 0, len(s.segments))
	for _, seg := range s.segments {
		if !seg.IsGenerated {
			pending = append(pending, seg)
		}
	}
	if len(pending) == 0 {
		s.mu.Unlock()
		return uuid.Nil, ErrNoSegments
	}
	jobID := s.nextJobIDLocked("audio")
	s.mu.Unlock()

	record := s.newJobRecord(models.JobTypeAudioGeneration, s.id)

	job := jobs.NewAudioGenerationJob(jobID, pending, s.synth)
	job.OnSegment = func(seg models.Segment) {
		s.applyGeneratedSegment(seg)
	}
	job.OnProgress = func(done, total int) {
		s.updateJobProgress(record.ID, 100*float64(done)/float64(total))
	}

	s.submit(record, job)
	return record.ID, nil
}

// CompileRequest is the wizard's final form payload.
type CompileRequest struct {
	Title       string    `validate:"required"`
	Description *string   `validate:"-"`
	AvatarID    uuid.UUID `validate:"required"`
	ProjectID   *uuid.UUID
}

// Compile validates the wizard form, snapshots the session into a Video
// record in the compiling state, and queues the simulated compilation. The
// finished video flips to ready with a synthetic URL.
func (s *Session) Compile(req CompileRequest) (models.Video, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Video{}, validationError(err)
	}
	if !s.avatarExists(req.AvatarID) {
		return models.Video{}, fmt.Errorf("avatar %s not found", req.AvatarID)
	}

	s.mu.Lock()
	if len(s.segments) == 0 {
		s.mu.Unlock()
		return models.Video{}, ErrNoSegments
	}

	now := time.Now()
	video := models.Video{
		ID:               uuid.New(),
		ProjectID:        req.ProjectID,
		Title:            req.Title,
		Description:      req.Description,
		Script:           s.script,
		Segments:         append([]models.Segment(nil), s.segments...),
		MediaAssignments: append([]models.MediaAssignment(nil), s.assignments...),
		AvatarID:         &req.AvatarID,
		Status:           models.VideoStatusCompiling,
		Duration:         totalDuration(s.segments),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	jobID := s.nextJobIDLocked("compile")
	s.mu.Unlock()

	s.store.Dispatch(store.AddVideo{Video: video})
	record := s.newJobRecord(models.JobTypeVideoCompile, video.ID)

	job := jobs.NewVideoCompileJob(jobID, video.ID, s.cfg.CompileSteps, s.cfg.CompileStepDelay)
	job.OnProgress = func(pct float64) {
		s.updateJobProgress(record.ID, pct)
	}
	job.OnComplete = func(videoURL string) {
		done := video
		done.Status = models.VideoStatusReady
		done.VideoURL = &videoURL
		done.UpdatedAt = time.Now()
		s.store.Dispatch(store.UpdateVideo{Video: done})
	}

	s.submit(record, job)
	return video, nil
}

// applyGeneratedSegment merges one finished segment back into the session.
// If the script changed while the job was running and the segment's text no
// longer matches, the update is stale and dropped.
func (s *Session) applyGeneratedSegment(seg models.Segment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.segments {
		if s.segments[i].ID == seg.ID && s.segments[i].Text == seg.Text {
			s.segments[i] = seg
			return
		}
	}
	s.log.WithFields(logrus.Fields{
		"session_id": s.id,
		"segment_id": seg.ID,
	}).Warn("Dropped stale audio result for edited segment")
}

// newJobRecord dispatches a pending job record into the store.
func (s *Session) newJobRecord(jobType string, entityID uuid.UUID) models.GenerationJob {
	record := models.GenerationJob{
		ID:        uuid.New(),
		JobType:   jobType,
		EntityID:  entityID,
		Status:    models.JobStatusPending,
		CreatedAt: time.Now(),
	}
	s.store.Dispatch(store.AddJob{Job: record})
	return record
}

func (s *Session) updateJobProgress(recordID uuid.UUID, pct float64) {
	record, ok := s.findJob(recordID)
	if !ok {
		return
	}
	if record.StartedAt == nil {
		now := time.Now()
		record.StartedAt = &now
	}
	record.Status = models.JobStatusProcessing
	record.Progress = pct
	s.store.Dispatch(store.UpdateJob{Job: record})
}

func (s *Session) finishJobRecord(recordID uuid.UUID, err error) {
	record, ok := s.findJob(recordID)
	if !ok {
		return
	}
	now := time.Now()
	record.CompletedAt = &now
	switch {
	case err == nil:
		record.Status = models.JobStatusCompleted
		record.Progress = 100
	case errors.Is(err, context.Canceled):
		record.Status = models.JobStatusCancelled
	default:
		record.Status = models.JobStatusFailed
		msg := err.Error()
		record.ErrorMessage = &msg
	}
	s.store.Dispatch(store.UpdateJob{Job: record})
}

func (s *Session) findJob(recordID uuid.UUID) (models.GenerationJob, bool) {
	for _, j := range s.store.State().Jobs {
		if j.ID == recordID {
			return j, true
		}
	}
	return models.GenerationJob{}, false
}

// submit queues the job under the session's cancellation token, wrapped so
// the store's job record reaches a terminal state however the job ends.
func (s *Session) submit(record models.GenerationJob, job worker.Job) {
	tracked := trackedJob{
		inner: job,
		done:  func(err error) { s.finishJobRecord(record.ID, err) },
	}
	if !s.dispatcher.Submit(s.ctx, tracked) {
		s.finishJobRecord(record.ID, errors.New("job queue full"))
	}
}

func (s *Session) nextJobIDLocked(kind string) string {
	s.jobSeq++
	return fmt.Sprintf("%s_%s_%d", kind, s.id, s.jobSeq)
}

func (s *Session) avatarExists(id uuid.UUID) bool {
	for _, a := range s.store.State().Avatars {
		if a.ID == id {
			return true
		}
	}
	return false
}

func totalDuration(segments []models.Segment) float64 {
	var total float64
	for _, seg := range segments {
		if seg.Duration > 0 {
			total += seg.Duration
		} else {
			total += segmenter.EstimateDuration(seg.Text)
		}
	}
	return total
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("invalid form: %s", strings.Join(utils.FormatValidationErrors(verrs), ", "))
	}
	return err
}

// trackedJob notifies the session when the inner job reaches any terminal
// state, including cancellation while still queued.
type trackedJob struct {
	inner worker.Job
	done  func(err error)
}

func (t trackedJob) ID() string { return t.inner.ID() }

func (t trackedJob) Execute(ctx context.Context) error {
	err := t.inner.Execute(ctx)
	t.done(err)
	return err
}
