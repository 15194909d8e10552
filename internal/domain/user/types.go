package user

type Role string

// Order matters: each role includes the permissions of the ones before it.
const (
	RoleGuest  Role = "guest"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

var roleLevels = map[Role]int{
	RoleGuest:  1,
	RoleMentor: 2,
	RoleAdmin:  3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	level, ok := roleLevels[r]
	minLevel, minOK := roleLevels[min]
	return ok && minOK && level >= minLevel
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
