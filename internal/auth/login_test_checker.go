package auth

import "context"

// LoginTestChecker is used in tests instead of the redis backed checker.
type LoginTestChecker struct {
	// LoggedUsers maps a session token to a user id
	LoggedUsers map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedUsers: map[string]int{},
	}
}

func (ltc *LoginTestChecker) GetLoggedUserID(_ context.Context, token string) (int, error) {
	userID, ok := ltc.LoggedUsers[token]
	if !ok {
		return 0, ErrNotLoggedIn
	}
	return userID, nil
}
