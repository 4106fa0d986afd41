package ports

import "github.com/google/uuid"

// TokenService issues and verifies signed session tokens. The token is the
// sole trust anchor for identity resolution: it carries the user id and
// nothing else.
type TokenService interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
