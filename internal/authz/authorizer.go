// Package authz decides which account roles may perform which actions.
// Routes ask for the roles of an action instead of listing roles inline, so
// the whole policy lives in one table.
package authz

// Action constants define the authorization actions.
const (
	ActionTourWrite     = "tour:write"
	ActionTourPlan      = "tour:plan"
	ActionUserAdmin     = "user:admin"
	ActionReviewCreate  = "review:create"
	ActionReviewWrite   = "review:write"
	ActionBookingManage = "booking:manage"
)

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform reports whether an account with role may perform action.
	CanPerform(role, action string) bool

	// RolesFor lists the roles allowed to perform action.
	RolesFor(action string) []string
}
