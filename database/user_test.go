package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	return store
}

func TestCreateUser(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("a@x.com", []byte("hash"), "Alice", "token-a")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateUser("a@x.com", []byte("hash"), "Alice", "token-a")
	require.NoError(t, err)

	_, err = store.CreateUser("a@x.com", []byte("other"), "Impostor", "token-b")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// the failed registration must not have written a row
	var count int64
	require.NoError(t, store.db.Model(&User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	user, err := store.GetUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestGetUserByEmailUnknown(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUserByEmail("nobody@x.com")
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func TestGetUserByID(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateUser("a@x.com", []byte("hash"), "Alice", "token-a")
	require.NoError(t, err)

	user, err := store.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = store.GetUserByID(created.ID + 100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserBySessionTokenEmpty(t *testing.T) {
	store := newTestStore(t)

	// the first registered user is the authoring identity; an empty token
	// must not resolve to it
	_, err := store.CreateUser("admin@x.com", []byte("hash"), "Admin", "token-a")
	require.NoError(t, err)

	_, err = store.GetUserBySessionToken("")
	assert.ErrorIs(t, err, ErrSessionUnknown)
}

func TestSessionTokenRotation(t *testing.T) {
	store := newTestStore(t)

	user, err := store.CreateUser("a@x.com", []byte("hash"), "Alice", "token-a")
	require.NoError(t, err)

	found, err := store.GetUserBySessionToken("token-a")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, store.SaveSessionToken(user, "token-b"))

	_, err = store.GetUserBySessionToken("token-a")
	assert.ErrorIs(t, err, ErrSessionUnknown)

	found, err = store.GetUserBySessionToken("token-b")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
