package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"coursecraft/studio/config"
	"coursecraft/studio/internal/jobs"
	"coursecraft/studio/internal/worker"
	"coursecraft/studio/models"
	"coursecraft/studio/permissions"
	"coursecraft/studio/session"
	"coursecraft/studio/store"
	"coursecraft/studio/utils"
)

// shell is the interactive front end: it parses commands, calls the session
// or dispatches store actions, and prints the results. All business rules
// live below it; the shell only ferries intents.
type shell struct {
	st         *store.Store
	sess       *session.Session
	dispatcher *worker.Dispatcher
	cfg        *config.Config
	rl         *readline.Instance

	// Cancellation token for jobs queued directly by the shell (lesson
	// plans); closing the shell halts them like closing a page would.
	ctx     context.Context
	cancel  context.CancelFunc
	planSeq int
}

func newShell(st *store.Store, sess *session.Session, dispatcher *worker.Dispatcher, cfg *config.Config) *shell {
	ctx, cancel := context.WithCancel(context.Background())
	return &shell{
		st:         st,
		sess:       sess,
		dispatcher: dispatcher,
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (sh *shell) close() {
	sh.cancel()
	if sh.rl != nil {
		sh.rl.Close()
	}
}

func (sh *shell) run() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "studio> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		fmt.Printf("Error initializing readline: %v\n", err)
		return
	}
	sh.rl = rl
	defer rl.Close()

	fmt.Println("Studio shell. Type 'help' for commands, 'exit' to quit.")

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return
			}
			return
		}

		line = utils.SanitizeInput(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		sh.handle(line)
	}
}

func (sh *shell) handle(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		sh.printHelp()
	case "script":
		sh.handleScript(args, line)
	case "segments":
		sh.printSegments()
	case "assign":
		sh.handleAssign(line)
	case "ranges":
		sh.printRanges()
	case "remove":
		sh.handleRemove(args)
	case "render":
		sh.printRender()
	case "generate":
		sh.handleGenerate()
	case "compile":
		sh.handleCompile(line)
	case "projects":
		sh.printProjects()
	case "project":
		sh.handleProject(args, line)
	case "courses":
		sh.printCourses()
	case "course":
		sh.handleCourse(args, line)
	case "plan":
		sh.handlePlan(args)
	case "avatars":
		sh.printAvatars()
	case "jobs":
		sh.printJobs()
	case "whoami":
		sh.printWhoami()
	case "can":
		sh.handleCan(args)
	default:
		fmt.Printf("Unknown command %q. Type 'help' for commands.\n", cmd)
	}
}

func (sh *shell) printHelp() {
	fmt.Println(`Commands:
  script set <text>          Replace the narration script
  script show                Print the current script
  segments                   List narration segments
  assign <type>|<selection>|<content>
                             Bind selected text to media (slide, stock-video, upload)
  ranges                     List media assignments
  remove <assignment id>     Delete a media assignment
  render                     Print the script as plain/highlighted spans
  generate                   Generate audio for ungenerated segments
  compile <title>|<avatar name>
                             Compile the session into a video
  projects / project add <name> / project rm <id prefix>
  courses  / course add <title>
  plan <course id prefix>    Generate a lesson plan for a course
  avatars                    List presenter avatars
  jobs                       List generation jobs
  whoami                     Show the current user and role
  can <resource> <action>    Check a permission for the current user
  exit`)
}

func (sh *shell) handleScript(args []string, line string) {
	if len(args) == 0 || args[0] == "show" {
		fmt.Println(sh.sess.Script())
		return
	}
	if args[0] != "set" {
		fmt.Println("Usage: script set <text> | script show")
		return
	}
	idx := strings.Index(line, "set")
	text := utils.SanitizeInput(line[idx+len("set"):])
	segments := sh.sess.SetScript(text)
	fmt.Printf("Script updated: %d segment(s)\n", len(segments))
}

func (sh *shell) printSegments() {
	segments := sh.sess.Segments()
	if len(segments) == 0 {
		fmt.Println("No segments. Set a script first.")
		return
	}
	for _, seg := range segments {
		status := "pending"
		if seg.IsGenerated {
			status = fmt.Sprintf("generated (%.1fs)", seg.Duration)
		}
		fmt.Printf("  %d. [%s] %s\n", seg.ID, status, seg.Text)
	}
}

func (sh *shell) handleAssign(line string) {
	rest := utils.SanitizeInput(strings.TrimPrefix(line, "assign"))
	parts := strings.SplitN(rest, "|", 3)
	if len(parts) != 3 {
		fmt.Println("Usage: assign <type>|<selection>|<content>")
		return
	}
	req := session.AssignMediaRequest{
		Type:         models.MediaType(utils.SanitizeInput(parts[0])),
		SelectedText: parts[1],
		Content:      utils.SanitizeInput(parts[2]),
	}
	created, err := sh.sess.AssignMedia(req)
	if err != nil {
		fmt.Printf("Assignment rejected: %v\n", err)
		return
	}
	fmt.Printf("Assigned %s to [%d,%d) as %d\n", created.Type, created.Range.Start, created.Range.End, created.ID)
}

func (sh *shell) printRanges() {
	highlights := sh.sess.Highlights()
	if len(highlights) == 0 {
		fmt.Println("No media assignments.")
		return
	}
	for _, h := range highlights {
		fmt.Printf("  %d: [%d,%d) %s %q\n", h.ID, h.Start, h.End, h.Type, h.Content)
	}
}

func (sh *shell) handleRemove(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: remove <assignment id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid assignment id %q\n", args[0])
		return
	}
	sh.sess.RemoveAssignment(id)
	fmt.Println("Removed (if present).")
}

func (sh *shell) printRender() {
	for _, span := range sh.sess.RenderSpans() {
		if span.Kind == models.SpanHighlight {
			fmt.Printf("[%s:%d]%s[/]", span.Type, span.AssignmentID, span.Text)
			continue
		}
		fmt.Print(span.Text)
	}
	fmt.Println()
}

func (sh *shell) handleGenerate() {
	jobID, err := sh.sess.GenerateAudio()
	if err != nil {
		if errors.Is(err, session.ErrNoSegments) {
			fmt.Println("Nothing to generate: every segment already has audio (or there is no script).")
			return
		}
		fmt.Printf("Generate failed: %v\n", err)
		return
	}
	fmt.Printf("Audio generation queued as job %s\n", jobID)
}

func (sh *shell) handleCompile(line string) {
	rest := utils.SanitizeInput(strings.TrimPrefix(line, "compile"))
	parts := strings.SplitN(rest, "|", 2)
	if len(parts) != 2 {
		fmt.Println("Usage: compile <title>|<avatar name>")
		return
	}
	title := utils.SanitizeInput(parts[0])
	avatarName := utils.SanitizeInput(parts[1])

	var avatarID uuid.UUID
	for _, a := range sh.st.State().Avatars {
		if strings.EqualFold(a.Name, avatarName) {
			avatarID = a.ID
			break
		}
	}
	if avatarID == uuid.Nil {
		fmt.Printf("Unknown avatar %q (see 'avatars')\n", avatarName)
		return
	}

	video, err := sh.sess.Compile(session.CompileRequest{Title: title, AvatarID: avatarID})
	if err != nil {
		fmt.Printf("Compile rejected: %v\n", err)
		return
	}
	fmt.Printf("Compiling video %s (%q, %.1fs)\n", video.ID, video.Title, video.Duration)
}

func (sh *shell) printProjects() {
	projects := sh.st.State().Projects
	if len(projects) == 0 {
		fmt.Println("No projects.")
		return
	}
	for _, p := range projects {
		fmt.Printf("  %s  %s\n", p.ID, p.Name)
	}
}

func (sh *shell) handleProject(args []string, line string) {
	if len(args) == 0 {
		fmt.Println("Usage: project add <name> | project rm <id prefix>")
		return
	}
	switch args[0] {
	case "add":
		idx := strings.Index(line, "add")
		name := utils.SanitizeInput(line[idx+len("add"):])
		if name == "" {
			fmt.Println("Usage: project add <name>")
			return
		}
		now := time.Now()
		project := models.Project{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}
		if user := sh.st.State().CurrentUser; user != nil {
			project.OwnerID = &user.ID
		}
		sh.st.Dispatch(store.AddProject{Project: project})
		fmt.Printf("Added project %s\n", project.ID)
	case "rm":
		if len(args) != 2 {
			fmt.Println("Usage: project rm <id prefix>")
			return
		}
		for _, p := range sh.st.State().Projects {
			if strings.HasPrefix(p.ID.String(), args[1]) {
				sh.st.Dispatch(store.DeleteProject{ID: p.ID})
				fmt.Printf("Deleted project %s\n", p.ID)
				return
			}
		}
		fmt.Println("No project matches that id prefix.")
	default:
		fmt.Println("Usage: project add <name> | project rm <id prefix>")
	}
}

func (sh *shell) printCourses() {
	courses := sh.st.State().Courses
	if len(courses) == 0 {
		fmt.Println("No courses.")
		return
	}
	for _, c := range courses {
		fmt.Printf("  %s  %s (%d lesson sections)\n", c.ID, c.Title, len(c.LessonPlan))
	}
}

func (sh *shell) handleCourse(args []string, line string) {
	if len(args) < 1 || args[0] != "add" {
		fmt.Println("Usage: course add <title>")
		return
	}
	idx := strings.Index(line, "add")
	title := utils.SanitizeInput(line[idx+len("add"):])
	if title == "" {
		fmt.Println("Usage: course add <title>")
		return
	}
	now := time.Now()
	course := models.Course{ID: uuid.New(), Title: title, CreatedAt: now, UpdatedAt: now}
	sh.st.Dispatch(store.AddCourse{Course: course})
	fmt.Printf("Added course %s\n", course.ID)
}

// handlePlan queues simulated lesson-plan generation for a course. The
// course's plan grows one section at a time as the job progresses.
func (sh *shell) handlePlan(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: plan <course id prefix>")
		return
	}

	var course models.Course
	found := false
	for _, c := range sh.st.State().Courses {
		if strings.HasPrefix(c.ID.String(), args[0]) {
			course, found = c, true
			break
		}
	}
	if !found {
		fmt.Println("No course matches that id prefix.")
		return
	}

	record := models.GenerationJob{
		ID:        uuid.New(),
		JobType:   models.JobTypeLessonPlan,
		EntityID:  course.ID,
		Status:    models.JobStatusPending,
		CreatedAt: time.Now(),
	}
	sh.st.Dispatch(store.AddJob{Job: record})

	sh.planSeq++
	job := jobs.NewLessonPlanJob(fmt.Sprintf("plan_%s_%d", course.ID, sh.planSeq), course.ID, course.Title, sh.cfg.LessonSectionDelay)
	job.OnSection = func(section models.LessonSection) {
		sh.appendLessonSection(course.ID, section)
	}
	job.OnComplete = func(plan []models.LessonSection) {
		now := time.Now()
		record.Status = models.JobStatusCompleted
		record.Progress = 100
		record.CompletedAt = &now
		sh.st.Dispatch(store.UpdateJob{Job: record})
	}

	if !sh.dispatcher.Submit(sh.ctx, job) {
		fmt.Println("Job queue full; try again later.")
		return
	}
	fmt.Printf("Lesson plan generation queued as job %s\n", record.ID)
}

func (sh *shell) appendLessonSection(courseID uuid.UUID, section models.LessonSection) {
	for _, c := range sh.st.State().Courses {
		if c.ID == courseID {
			updated := c
			updated.LessonPlan = append(append([]models.LessonSection(nil), c.LessonPlan...), section)
			updated.UpdatedAt = time.Now()
			sh.st.Dispatch(store.UpdateCourse{Course: updated})
			return
		}
	}
}

func (sh *shell) printAvatars() {
	for _, a := range sh.st.State().Avatars {
		style := ""
		if a.Style != nil {
			style = " (" + *a.Style + ")"
		}
		fmt.Printf("  %s  %s%s\n", a.ID, a.Name, style)
	}
}

func (sh *shell) printJobs() {
	jobList := sh.st.State().Jobs
	if len(jobList) == 0 {
		fmt.Println("No jobs.")
		return
	}
	for _, j := range jobList {
		fmt.Printf("  %s  %-16s %-10s %5.1f%%\n", j.ID, j.JobType, j.Status, j.Progress)
	}
}

func (sh *shell) printWhoami() {
	user := sh.st.State().CurrentUser
	if user == nil {
		fmt.Println("No current user.")
		return
	}
	fmt.Printf("%s <%s> role=%s admin=%t org-admin=%t\n",
		user.Name, user.Email, user.Role.Type,
		permissions.IsAdmin(*user), permissions.IsOrgAdmin(*user))
}

func (sh *shell) handleCan(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: can <resource> <action>")
		return
	}
	user := sh.st.State().CurrentUser
	if user == nil {
		fmt.Println("No current user.")
		return
	}
	fmt.Println(permissions.HasPermission(*user, args[0], args[1]))
}
