package shared

import (
	"boat-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command or query.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func NewActor(userID uuid.UUID, role user.Role) Actor {
	return Actor{UserID: userID, Role: role}
}

func (a Actor) CurrentUserID() uuid.UUID { return a.UserID }
func (a Actor) IsAdmin() bool            { return a.Role == user.RoleAdmin }

// CanAccess reports whether the actor may see or change something owned by
// ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
