package auth

import "context"

// Checker resolves a session token to the logged in user id.
type Checker interface {
	GetLoggedUserID(ctx context.Context, token string) (int, error)
}

var (
	_ Checker = (*LoginChecker)(nil)
	_ Checker = (*LoginTestChecker)(nil)
)
