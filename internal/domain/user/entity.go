package user

import (
	"net/mail"
	"strings"

	"boat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail       = errs.Define("invalid email format", errs.ErrInvalidArgument)
	ErrInvalidRole        = errs.Define("invalid role", errs.ErrInvalidArgument)
	ErrInvalidDisplayName = errs.Define("display name cannot be empty", errs.ErrInvalidArgument)
)

// User is the local projection of an identity-provider account. Guests book
// trips, mentors look after batteries, admins run the fleet.
type User struct {
	id          uuid.UUID
	email       string
	displayName string
	role        Role
}

func NewUser(email, displayName string, role Role) (*User, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return nil, ErrInvalidEmail
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		return nil, ErrInvalidDisplayName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:          uuid.New(),
		email:       addr.Address,
		displayName: name,
		role:        role,
	}, nil
}

func ReconstructUser(id uuid.UUID, email, displayName string, role Role) *User {
	return &User{id: id, email: email, displayName: displayName, role: role}
}

func (u *User) ID() uuid.UUID       { return u.id }
func (u *User) Email() string       { return u.email }
func (u *User) DisplayName() string { return u.displayName }
func (u *User) Role() Role          { return u.role }
func (u *User) IsAdmin() bool       { return u.role == RoleAdmin }
