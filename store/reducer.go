package store

import (
	"coursecraft/studio/models"
)

// Reduce applies one action to the state and returns the next state. It is
// pure: the input state and its slices are never mutated, so previous
// snapshots handed to subscribers stay valid. Update actions with an unknown
// id are no-ops, as are deletes of absent ids.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetProjects:
		s.Projects = act.Projects
	case AddProject:
		s.Projects = appendCopy(s.Projects, act.Project)
	case UpdateProject:
		s.Projects = replaceWhere(s.Projects, act.Project, func(p models.Project) bool {
			return p.ID == act.Project.ID
		})
	case DeleteProject:
		s.Projects = deleteWhere(s.Projects, func(p models.Project) bool { return p.ID == act.ID })

	case SetCourses:
		s.Courses = act.Courses
	case AddCourse:
		s.Courses = appendCopy(s.Courses, act.Course)
	case UpdateCourse:
		s.Courses = replaceWhere(s.Courses, act.Course, func(c models.Course) bool {
			return c.ID == act.Course.ID
		})
	case DeleteCourse:
		s.Courses = deleteWhere(s.Courses, func(c models.Course) bool { return c.ID == act.ID })

	case SetVideos:
		s.Videos = act.Videos
	case AddVideo:
		s.Videos = appendCopy(s.Videos, act.Video)
	case UpdateVideo:
		s.Videos = replaceWhere(s.Videos, act.Video, func(v models.Video) bool {
			return v.ID == act.Video.ID
		})
	case DeleteVideo:
		s.Videos = deleteWhere(s.Videos, func(v models.Video) bool { return v.ID == act.ID })

	case SetAvatars:
		s.Avatars = act.Avatars
	case AddAvatar:
		s.Avatars = appendCopy(s.Avatars, act.Avatar)
	case UpdateAvatar:
		s.Avatars = replaceWhere(s.Avatars, act.Avatar, func(av models.Avatar) bool {
			return av.ID == act.Avatar.ID
		})
	case DeleteAvatar:
		s.Avatars = deleteWhere(s.Avatars, func(av models.Avatar) bool { return av.ID == act.ID })

	case SetKnowledgePackages:
		s.KnowledgePackages = act.Packages
	case AddKnowledgePackage:
		s.KnowledgePackages = appendCopy(s.KnowledgePackages, act.Package)
	case UpdateKnowledgePackage:
		s.KnowledgePackages = replaceWhere(s.KnowledgePackages, act.Package, func(k models.KnowledgePackage) bool {
			return k.ID == act.Package.ID
		})
	case DeleteKnowledgePackage:
		s.KnowledgePackages = deleteWhere(s.KnowledgePackages, func(k models.KnowledgePackage) bool {
			return k.ID == act.ID
		})

	case AddJob:
		s.Jobs = appendCopy(s.Jobs, act.Job)
	case UpdateJob:
		s.Jobs = replaceWhere(s.Jobs, act.Job, func(j models.GenerationJob) bool {
			return j.ID == act.Job.ID
		})

	case SetUsers:
		s.Users = act.Users
	case SetCurrentUser:
		s.CurrentUser = act.User
	}
	return s
}

// appendCopy returns a fresh slice so the previous state's backing array is
// never written through.
func appendCopy[T any](xs []T, x T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs...)
	out = append(out, x)
	return out
}

func replaceWhere[T any](xs []T, replacement T, match func(T) bool) []T {
	for i, x := range xs {
		if match(x) {
			out := make([]T, len(xs))
			copy(out, xs)
			out[i] = replacement
			return out
		}
	}
	return xs
}

func deleteWhere[T any](xs []T, match func(T) bool) []T {
	out := make([]T, 0, len(xs))
	removed := false
	for _, x := range xs {
		if match(x) {
			removed = true
			continue
		}
		out = append(out, x)
	}
	if !removed {
		return xs
	}
	return out
}
