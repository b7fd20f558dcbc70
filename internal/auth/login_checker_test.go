package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginChecker_GetLoggedUserID(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	loginChecker := NewLoginChecker(time.Hour, db)
	require.NotNil(t, loginChecker)

	ctx := context.Background()

	mock.ExpectGet(sessionKeyPrefix + "invalid token").SetErr(redis.Nil)
	userID, err := loginChecker.GetLoggedUserID(ctx, "invalid token")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, userID)

	mock.ExpectGet(sessionKeyPrefix + "invalid token").SetErr(redis.Nil)
	userID, err = loginChecker.GetLoggedUserID(ctx, "invalid token")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, userID) // idempotent

	testToken := "test-token"
	now := time.Now()
	sessionKey := sessionKeyPrefix + testToken

	mock.ExpectGet(sessionKey).SetVal(sessionValue(7, now))
	userID, err = loginChecker.GetLoggedUserID(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
	mock.ExpectGet(sessionKey).SetVal(sessionValue(7, now))
	userID, err = loginChecker.GetLoggedUserID(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 7, userID) // idempotent

	// expired session
	then := now.Add(-2 * time.Hour)
	mock.ExpectGet(sessionKey).SetVal(sessionValue(7, then))
	userID, err = loginChecker.GetLoggedUserID(ctx, testToken)
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, userID)
}
