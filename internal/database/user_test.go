package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return client
}

func TestCreateAndGetUser(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, "ann", "digest-1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ann", user.Username)
	assert.Equal(t, "digest-1", user.PasswordHash)

	byName, err := client.GetUserByUsername(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byID, err := client.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", byID.Username)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.CreateUser(ctx, "ann", "digest-1")
	require.NoError(t, err)

	user, err := client.CreateUser(ctx, "ann", "digest-2")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestGetUserNotFound(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = client.GetUserByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, "ann", "digest-1")
	require.NoError(t, err)

	updated, err := client.UpdateUserProfile(ctx, user.ID, "Anna", "female")
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "female", updated.Gender)

	// Only name and gender change, login key and digest stay put.
	reloaded, err := client.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", reloaded.Username)
	assert.Equal(t, "digest-1", reloaded.PasswordHash)
	assert.Equal(t, "Anna", reloaded.Name)
}

func TestUpdateUserProfileNotFound(t *testing.T) {
	client := newTestClient(t)

	_, err := client.UpdateUserProfile(context.Background(), 42, "Anna", "female")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
