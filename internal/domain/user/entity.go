package user

// Role is the access level of a console user. It only drives which menu
// sections the client renders; there is no deeper enforcement beyond the
// admin-only user management routes.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleManager       Role = "Manager"
	RoleCoordinator   Role = "Coordinator"
	RoleUser          Role = "User"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleCoordinator, RoleUser:
		return true
	}
	return false
}

// User is a console account. PasswordHash is a bcrypt hash and is never
// serialized in responses.
type User struct {
	ID           int
	Name         string
	Login        string
	PasswordHash string
	AvatarURL    string
	Role         Role
}

// MenuSections returns the sidebar sections visible to the role, in render
// order.
func (r Role) MenuSections() []string {
	sections := []string{"dashboard", "employees", "leaves", "performance"}
	switch r {
	case RoleAdministrator:
		return append(sections, "recruitment", "reports", "profiles")
	case RoleManager, RoleCoordinator:
		return append(sections, "recruitment", "reports")
	default:
		return sections
	}
}
