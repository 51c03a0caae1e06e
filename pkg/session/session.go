// Package session manages the authenticated browsing session: who is signed
// in and which materials they have saved. The session is a single entity
// persisted under its own storage key, independent of the catalog; materials
// are referenced by id only, and the catalog never depends on this package.
package session

import (
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iarchive/iarchive/pkg/errors"
	"github.com/iarchive/iarchive/pkg/logging"
	"github.com/iarchive/iarchive/pkg/storage"
)

// storageKey is the fixed key the session entity lives under.
const storageKey = "session"

// Role labels for sessions. Free-form like User.Role, but the portal only
// issues these three.
const (
	RoleAdmin      = "admin"
	RoleStudent    = "student"
	RoleResearcher = "researcher"
)

// Session is the current signed-in identity.
type Session struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Role       string   `json:"role" yaml:"role"`
	Avatar     string   `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	SavedItems []string `json:"savedItems" yaml:"saved_items"`
}

// Saved reports whether the session has saved the given material id.
func (s Session) Saved(itemID string) bool {
	for _, id := range s.SavedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// Manager owns the session entity and its persistence mirror.
type Manager struct {
	mu      sync.RWMutex
	store   storage.Store
	logger  *zerolog.Logger
	current *Session
}

// NewManager creates a session manager over the given store, restoring any
// persisted session. A corrupt session document is discarded silently.
func NewManager(store storage.Store, logger *zerolog.Logger) *Manager {
	if logger == nil {
		logger = logging.Default()
	}
	m := &Manager{store: store, logger: logger}
	m.restore()
	return m
}

// Login starts a new session for email with the given role, replacing any
// current session. The display name is titled from the email's local part.
func (m *Manager) Login(email, role string) (Session, error) {
	if email == "" || !strings.Contains(email, "@") {
		return Session{}, errors.NewValidationError("email", email, "must be an email address")
	}

	local := email[:strings.Index(email, "@")]
	sess := Session{
		ID:         uuid.NewString(),
		Name:       cases.Title(language.English).String(local),
		Email:      email,
		Role:       role,
		Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
		SavedItems: []string{},
	}

	m.mu.Lock()
	m.current = &sess
	m.persistLocked()
	m.mu.Unlock()

	m.logger.Info().Str("email", email).Str("role", role).Msg("Session started")
	return sess, nil
}

// Logout ends the current session and removes it from the store. Logging out
// with no session is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}
	m.current = nil
	if err := m.store.Delete(storageKey); err != nil {
		m.logger.Warn().Err(err).Msg("Removing persisted session failed")
	}
}

// Current returns the active session, if any.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	_, ok := m.Current()
	return ok
}

// ToggleSave adds itemID to the saved list, or removes it if already present,
// and returns the updated session.
func (m *Manager) ToggleSave(itemID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return Session{}, errors.ErrNoSession
	}

	saved := m.current.SavedItems
	if m.current.Saved(itemID) {
		kept := make([]string, 0, len(saved)-1)
		for _, id := range saved {
			if id != itemID {
				kept = append(kept, id)
			}
		}
		m.current.SavedItems = kept
	} else {
		m.current.SavedItems = append(saved, itemID)
	}

	m.persistLocked()
	return *m.current, nil
}

// restore loads a previously persisted session, if any.
func (m *Manager) restore() {
	data, ok, err := m.store.Load(storageKey)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Loading persisted session failed")
		return
	}
	if !ok {
		return
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		m.logger.Warn().Err(err).Msg("Persisted session is corrupt, discarding")
		return
	}
	if sess.SavedItems == nil {
		sess.SavedItems = []string{}
	}
	m.current = &sess
}

// persistLocked mirrors the current session to the store. Callers hold the
// write lock.
func (m *Manager) persistLocked() {
	data, err := yaml.Marshal(m.current)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Serializing session failed")
		return
	}
	if err := m.store.Save(storageKey, data); err != nil {
		m.logger.Warn().Err(err).Msg("Persisting session failed")
	}
}
