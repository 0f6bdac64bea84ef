package store

import "coursecraft/studio/models"

// State is the full in-memory tree the dashboard renders from. It is only
// ever replaced wholesale by the reducer, never mutated in place.
type State struct {
	Projects          []models.Project
	Courses           []models.Course
	Videos            []models.Video
	Avatars           []models.Avatar
	KnowledgePackages []models.KnowledgePackage
	Jobs              []models.GenerationJob
	Users             []models.User
	CurrentUser       *models.User
}
