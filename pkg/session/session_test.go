package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iarchive/iarchive/pkg/errors"
	"github.com/iarchive/iarchive/pkg/logging"
	"github.com/iarchive/iarchive/pkg/storage/memory"
)

func newTestManager(t *testing.T) (*Manager, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewManager(store, &logging.Nop), store
}

func TestLoginCreatesSession(t *testing.T) {
	m, store := newTestManager(t)

	sess, err := m.Login("jane.doe@university.edu", RoleResearcher)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "Jane.Doe", sess.Name)
	assert.Equal(t, "jane.doe@university.edu", sess.Email)
	assert.Equal(t, RoleResearcher, sess.Role)
	assert.Contains(t, sess.Avatar, "jane.doe@university.edu")
	assert.Empty(t, sess.SavedItems)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, sess, current)
	assert.True(t, m.Authenticated())

	_, persisted, err := store.Load("session")
	require.NoError(t, err)
	assert.True(t, persisted)
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Login("not-an-email", RoleStudent)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, m.Authenticated())
}

func TestLoginReplacesExistingSession(t *testing.T) {
	m, _ := newTestManager(t)

	first, err := m.Login("admin@archive.org", RoleAdmin)
	require.NoError(t, err)

	second, err := m.Login("student@university.edu", RoleStudent)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "student@university.edu", current.Email)
}

func TestLogoutClearsSessionAndStore(t *testing.T) {
	m, store := newTestManager(t)

	_, err := m.Login("admin@archive.org", RoleAdmin)
	require.NoError(t, err)

	m.Logout()
	assert.False(t, m.Authenticated())

	_, ok, err := store.Load("session")
	require.NoError(t, err)
	assert.False(t, ok)

	// Logging out again is a no-op.
	m.Logout()
}

func TestToggleSave(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Login("jane@university.edu", RoleResearcher)
	require.NoError(t, err)

	sess, err := m.ToggleSave("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, sess.SavedItems)

	sess, err = m.ToggleSave("7")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7"}, sess.SavedItems)
	assert.True(t, sess.Saved("3"))

	sess, err = m.ToggleSave("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, sess.SavedItems)
	assert.False(t, sess.Saved("3"))
}

func TestToggleSaveWithoutSession(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.ToggleSave("1")
	assert.ErrorIs(t, err, errors.ErrNoSession)
}

func TestSessionRestoredAcrossManagers(t *testing.T) {
	store := memory.New()

	first := NewManager(store, &logging.Nop)
	_, err := first.Login("jane@university.edu", RoleResearcher)
	require.NoError(t, err)
	_, err = first.ToggleSave("5")
	require.NoError(t, err)

	second := NewManager(store, &logging.Nop)
	current, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "jane@university.edu", current.Email)
	assert.Equal(t, []string{"5"}, current.SavedItems)
}

func TestCorruptSessionDiscarded(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Save("session", []byte("{{not yaml")))

	m := NewManager(store, &logging.Nop)
	assert.False(t, m.Authenticated())
}
