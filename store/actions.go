package store

import (
	"github.com/google/uuid"

	"coursecraft/studio/models"
)

// Action is the closed set of store mutations. Each variant carries exactly
// the data its reducer case needs; the unexported marker method keeps the
// set closed so the switch in Reduce stays exhaustive.
type Action interface {
	isAction()
	Name() string
}

// Project actions.
type SetProjects struct{ Projects []models.Project }
type AddProject struct{ Project models.Project }
type UpdateProject struct{ Project models.Project }
type DeleteProject struct{ ID uuid.UUID }

// Course actions.
type SetCourses struct{ Courses []models.Course }
type AddCourse struct{ Course models.Course }
type UpdateCourse struct{ Course models.Course }
type DeleteCourse struct{ ID uuid.UUID }

// Video actions.
type SetVideos struct{ Videos []models.Video }
type AddVideo struct{ Video models.Video }
type UpdateVideo struct{ Video models.Video }
type DeleteVideo struct{ ID uuid.UUID }

// Avatar actions.
type SetAvatars struct{ Avatars []models.Avatar }
type AddAvatar struct{ Avatar models.Avatar }
type UpdateAvatar struct{ Avatar models.Avatar }
type DeleteAvatar struct{ ID uuid.UUID }

// Knowledge package actions.
type SetKnowledgePackages struct{ Packages []models.KnowledgePackage }
type AddKnowledgePackage struct{ Package models.KnowledgePackage }
type UpdateKnowledgePackage struct{ Package models.KnowledgePackage }
type DeleteKnowledgePackage struct{ ID uuid.UUID }

// Generation job actions.
type AddJob struct{ Job models.GenerationJob }
type UpdateJob struct{ Job models.GenerationJob }

// User actions.
type SetUsers struct{ Users []models.User }
type SetCurrentUser struct{ User *models.User }

func (SetProjects) isAction()            {}
func (AddProject) isAction()             {}
func (UpdateProject) isAction()          {}
func (DeleteProject) isAction()          {}
func (SetCourses) isAction()             {}
func (AddCourse) isAction()              {}
func (UpdateCourse) isAction()           {}
func (DeleteCourse) isAction()           {}
func (SetVideos) isAction()              {}
func (AddVideo) isAction()               {}
func (UpdateVideo) isAction()            {}
func (DeleteVideo) isAction()            {}
func (SetAvatars) isAction()             {}
func (AddAvatar) isAction()              {}
func (UpdateAvatar) isAction()           {}
func (DeleteAvatar) isAction()           {}
func (SetKnowledgePackages) isAction()   {}
func (AddKnowledgePackage) isAction()    {}
func (UpdateKnowledgePackage) isAction() {}
func (DeleteKnowledgePackage) isAction() {}
func (AddJob) isAction()                 {}
func (UpdateJob) isAction()              {}
func (SetUsers) isAction()               {}
func (SetCurrentUser) isAction()         {}

// Name returns the action's wire-style tag, kept in the dashboard's original
// SET_* / ADD_* / UPDATE_* / DELETE_* vocabulary for log readability.
func (SetProjects) Name() string            { return "SET_PROJECTS" }
func (AddProject) Name() string             { return "ADD_PROJECT" }
func (UpdateProject) Name() string          { return "UPDATE_PROJECT" }
func (DeleteProject) Name() string          { return "DELETE_PROJECT" }
func (SetCourses) Name() string             { return "SET_COURSES" }
func (AddCourse) Name() string              { return "ADD_COURSE" }
func (UpdateCourse) Name() string           { return "UPDATE_COURSE" }
func (DeleteCourse) Name() string           { return "DELETE_COURSE" }
func (SetVideos) Name() string              { return "SET_VIDEOS" }
func (AddVideo) Name() string               { return "ADD_VIDEO" }
func (UpdateVideo) Name() string            { return "UPDATE_VIDEO" }
func (DeleteVideo) Name() string            { return "DELETE_VIDEO" }
func (SetAvatars) Name() string             { return "SET_AVATARS" }
func (AddAvatar) Name() string              { return "ADD_AVATAR" }
func (UpdateAvatar) Name() string           { return "UPDATE_AVATAR" }
func (DeleteAvatar) Name() string           { return "DELETE_AVATAR" }
func (SetKnowledgePackages) Name() string   { return "SET_KNOWLEDGE_PACKAGES" }
func (AddKnowledgePackage) Name() string    { return "ADD_KNOWLEDGE_PACKAGE" }
func (UpdateKnowledgePackage) Name() string { return "UPDATE_KNOWLEDGE_PACKAGE" }
func (DeleteKnowledgePackage) Name() string { return "DELETE_KNOWLEDGE_PACKAGE" }
func (AddJob) Name() string                 { return "ADD_JOB" }
func (UpdateJob) Name() string              { return "UPDATE_JOB" }
func (SetUsers) Name() string               { return "SET_USERS" }
func (SetCurrentUser) Name() string         { return "SET_CURRENT_USER" }
