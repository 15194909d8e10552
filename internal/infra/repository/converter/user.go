package converter

import (
	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/infra/pgquery"
)

func UserToDomain(row pgquery.UserRow) *user.User {
	return user.ReconstructUser(row.ID, row.Email, row.DisplayName, user.Role(row.Role))
}
