package constants

// User roles. Visitor is the default for newly created accounts.
const (
	RoleAdmin   = "admin"
	RoleCoach   = "coach"
	RoleParent  = "parent"
	RoleVisitor = "visitor"
)

var ValidRoles = []string{RoleAdmin, RoleCoach, RoleParent, RoleVisitor}
