package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecraft/studio/models"
)

func makeProject(name string) models.Project {
	now := time.Now()
	return models.Project{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}
}

func TestReduce_AddUpdateDeleteProject(t *testing.T) {
	p := makeProject("one")

	s := Reduce(State{}, AddProject{Project: p})
	require.Len(t, s.Projects, 1)

	renamed := p
	renamed.Name = "renamed"
	s = Reduce(s, UpdateProject{Project: renamed})
	assert.Equal(t, "renamed", s.Projects[0].Name)

	s = Reduce(s, DeleteProject{ID: p.ID})
	assert.Empty(t, s.Projects)
}

func TestReduce_UpdateUnknownIDIsNoOp(t *testing.T) {
	p := makeProject("one")
	s := Reduce(State{}, AddProject{Project: p})

	ghost := makeProject("ghost")
	next := Reduce(s, UpdateProject{Project: ghost})
	assert.Equal(t, s, next)

	next = Reduce(s, DeleteProject{ID: ghost.ID})
	assert.Equal(t, s, next)
}

func TestReduce_Purity(t *testing.T) {
	p := makeProject("one")
	s := Reduce(State{}, AddProject{Project: p})
	snapshot := s.Projects

	s2 := Reduce(s, AddProject{Project: makeProject("two")})
	renamed := p
	renamed.Name = "changed"
	_ = Reduce(s2, UpdateProject{Project: renamed})

	// The original snapshot's backing array was never written through.
	require.Len(t, snapshot, 1)
	assert.Equal(t, "one", snapshot[0].Name)
	require.Len(t, s.Projects, 1)
}

func TestReduce_JobsAndUsers(t *testing.T) {
	job := models.GenerationJob{ID: uuid.New(), JobType: models.JobTypeVideoCompile, Status: models.JobStatusPending}
	s := Reduce(State{}, AddJob{Job: job})
	require.Len(t, s.Jobs, 1)

	job.Status = models.JobStatusCompleted
	job.Progress = 100
	s = Reduce(s, UpdateJob{Job: job})
	assert.Equal(t, models.JobStatusCompleted, s.Jobs[0].Status)

	user := models.User{ID: uuid.New(), Name: "u"}
	s = Reduce(s, SetUsers{Users: []models.User{user}})
	s = Reduce(s, SetCurrentUser{User: &user})
	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, user.ID, s.CurrentUser.ID)
}

func TestStore_DispatchNotifiesSubscribersInOrder(t *testing.T) {
	st := New()

	var order []string
	st.Subscribe(func(State) { order = append(order, "first") })
	st.Subscribe(func(State) { order = append(order, "second") })

	st.Dispatch(AddProject{Project: makeProject("p")})

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, st.State().Projects, 1)
}

func TestStore_Unsubscribe(t *testing.T) {
	st := New()

	calls := 0
	unsubscribe := st.Subscribe(func(State) { calls++ })

	st.Dispatch(AddProject{Project: makeProject("a")})
	unsubscribe()
	unsubscribe() // second call is a no-op
	st.Dispatch(AddProject{Project: makeProject("b")})

	assert.Equal(t, 1, calls)
}

func TestStore_SubscriberSeesPostDispatchState(t *testing.T) {
	st := New()

	var seen int
	st.Subscribe(func(s State) { seen = len(s.Projects) })

	st.Dispatch(AddProject{Project: makeProject("a")})
	assert.Equal(t, 1, seen)
	st.Dispatch(AddProject{Project: makeProject("b")})
	assert.Equal(t, 2, seen)
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "ADD_PROJECT", AddProject{}.Name())
	assert.Equal(t, "SET_CURRENT_USER", SetCurrentUser{}.Name())
	assert.Equal(t, "DELETE_KNOWLEDGE_PACKAGE", DeleteKnowledgePackage{}.Name())
	assert.Equal(t, "UPDATE_JOB", UpdateJob{}.Name())
}
