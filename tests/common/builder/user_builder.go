//go:build unit || e2e

package builder

import (
	"boat-reservation/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          uuid.New(),
		Email:       "sailor@example.com",
		DisplayName: "Test Sailor",
		Role:        "guest",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Email, u.DisplayName, role)
}

func (u *UserBuilder) BuildReconstructed() *user.User {
	return user.ReconstructUser(u.ID, u.Email, u.DisplayName, user.Role(u.Role))
}
