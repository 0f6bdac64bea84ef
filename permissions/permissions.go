// Package permissions implements the pure predicates that gate admin and
// analytics screens. These checks control navigation and rendering only;
// they are not a security boundary.
package permissions

import "coursecraft/studio/models"

// Wildcard matches any resource or action in a permission grant.
const Wildcard = "*"

// HasPermission reports whether the user's role grants action on resource.
// No caching, no side effects; recomputed on every call.
func HasPermission(user models.User, resource, action string) bool {
	for _, grant := range user.Role.Permissions {
		if grant.Resource != resource && grant.Resource != Wildcard {
			continue
		}
		for _, a := range grant.Actions {
			if a == action || a == Wildcard {
				return true
			}
		}
	}
	return false
}

// IsAdmin reports whether the user carries the admin role tag.
func IsAdmin(user models.User) bool {
	return user.Role.Type == models.RoleTypeAdmin
}

// IsOrgAdmin reports whether the user carries the org-admin role tag.
func IsOrgAdmin(user models.User) bool {
	return user.Role.Type == models.RoleTypeOrgAdmin
}
