package main

import (
	"time"

	"github.com/google/uuid"

	"coursecraft/studio/models"
	"coursecraft/studio/store"
)

// seedDemoData loads the fixtures every fresh dashboard starts with: two
// presenter avatars, the built-in roles, a demo creator account and a
// starter project.
func seedDemoData(st *store.Store) {
	now := time.Now()

	professional := "professional"
	casual := "casual"
	st.Dispatch(store.SetAvatars{Avatars: []models.Avatar{
		{ID: uuid.New(), Name: "Maya", Style: &professional, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Theo", Style: &casual, CreatedAt: now, UpdatedAt: now},
	}})

	creatorRole := models.Role{
		Type: models.RoleTypeCreator,
		Name: "Content Creator",
		Permissions: []models.Permission{
			{Resource: "projects", Actions: []string{"read", "create", "update", "delete"}},
			{Resource: "courses", Actions: []string{"read", "create", "update"}},
			{Resource: "videos", Actions: []string{"read", "create", "update", "delete"}},
			{Resource: "knowledge-packages", Actions: []string{"read", "create"}},
		},
	}
	adminRole := models.Role{
		Type: models.RoleTypeAdmin,
		Name: "Administrator",
		Permissions: []models.Permission{
			{Resource: "*", Actions: []string{"*"}},
		},
	}

	creator := models.User{
		ID:        uuid.New(),
		Name:      "Demo Creator",
		Email:     "creator@example.com",
		Role:      creatorRole,
		CreatedAt: now,
	}
	admin := models.User{
		ID:        uuid.New(),
		Name:      "Demo Admin",
		Email:     "admin@example.com",
		Role:      adminRole,
		CreatedAt: now,
	}
	st.Dispatch(store.SetUsers{Users: []models.User{creator, admin}})
	st.Dispatch(store.SetCurrentUser{User: &creator})

	description := "Starter project for trying out the studio"
	st.Dispatch(store.AddProject{Project: models.Project{
		ID:          uuid.New(),
		Name:        "Getting Started",
		Description: &description,
		OwnerID:     &creator.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}})
}
