package authz

import (
	"slices"

	"tourbook/internal/models"
)

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionTourWrite:     {models.RoleAdmin, models.RoleLeadGuide},
	ActionTourPlan:      {models.RoleAdmin, models.RoleLeadGuide, models.RoleGuide},
	ActionUserAdmin:     {models.RoleAdmin},
	ActionReviewCreate:  {models.RoleUser},
	ActionReviewWrite:   {models.RoleUser, models.RoleAdmin},
	ActionBookingManage: {models.RoleAdmin, models.RoleLeadGuide},
}

// RoleAuthorizer implements Authorizer from the static role table.
type RoleAuthorizer struct {
	permissions map[string][]string
}

// NewRoleAuthorizer creates a new RoleAuthorizer.
func NewRoleAuthorizer() *RoleAuthorizer {
	return &RoleAuthorizer{permissions: rolePermissions}
}

// CanPerform reports whether role is listed for action. Unknown actions are
// denied.
func (a *RoleAuthorizer) CanPerform(role, action string) bool {
	return slices.Contains(a.permissions[action], role)
}

// RolesFor returns a copy of the roles allowed for action.
func (a *RoleAuthorizer) RolesFor(action string) []string {
	return slices.Clone(a.permissions[action])
}

var _ Authorizer = (*RoleAuthorizer)(nil)
