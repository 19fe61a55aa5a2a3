package editsession

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
)

// Manager owns the open sessions. Edit mode of a page stays on while any session on it
// is editing.
type Manager struct {
	auth     Authorizer
	notifier Notifier
	delays   Delays
	ttl      time.Duration
	logger   zerolog.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	editors  map[string]int
}

// ManagerConfig configures a Manager. A zero TTL keeps sessions until closed.
type ManagerConfig struct {
	Delays   Delays
	TTL      time.Duration
	Notifier Notifier
	Logger   zerolog.Logger
}

// NewManager creates a Manager that checks save passwords with auth.
func NewManager(auth Authorizer, cfg ManagerConfig) *Manager {
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = Notifiers(nil)
	}
	return &Manager{
		auth:     auth,
		notifier: notifier,
		delays:   cfg.Delays,
		ttl:      cfg.TTL,
		logger:   cfg.Logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
		editors:  make(map[string]int),
	}
}

// Open starts a session for username on page.
func (m *Manager) Open(username string, page Page) *Session {
	s := NewSession(uuid.NewString(), username, page, m.auth,
		WithDelays(m.delays),
		WithNotifier(m.notifier),
		WithLogger(m.logger),
		WithClock(m.now),
	)
	s.lease = &sharedLease{m: m, page: page}

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with id, which must belong to username.
func (m *Manager) Get(id, username string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrEditSessionNotFound, id)
	}
	if s.Username() != username {
		return nil, fmt.Errorf("%w: session %s belongs to another editor", apperrors.ErrPermissionDenied, id)
	}
	return s, nil
}

// Close abandons and forgets the session with id.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
	return ok
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than the TTL and returns how many it closed.
// Sessions in the middle of a save are left alone.
func (m *Manager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.State() != Saving && s.LastActive().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
		m.logger.Info().Str("session", s.ID()).Str("realm", s.Realm()).Msg("Edit session expired")
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Shutdown closes every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

// sharedLease counts the sessions editing a page.
type sharedLease struct {
	m    *Manager
	page Page
}

func (l *sharedLease) acquire() {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	realm := l.page.Name()
	l.m.editors[realm]++
	if l.m.editors[realm] == 1 {
		l.page.SetEditMode(true)
	}
}

func (l *sharedLease) release() {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	realm := l.page.Name()
	if l.m.editors[realm] == 0 {
		return
	}
	l.m.editors[realm]--
	if l.m.editors[realm] == 0 {
		delete(l.m.editors, realm)
		l.page.SetEditMode(false)
	}
}
