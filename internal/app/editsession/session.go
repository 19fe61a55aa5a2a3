// Package editsession drives the edit and save control of a page: entering edit mode,
// the password-gated save confirmation and the final write.
package editsession

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
)

// State is a step of the edit/save control.
type State int

const (
	Viewing State = iota
	EditLoading
	Editing
	SaveConfirming
	Saving
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case EditLoading:
		return "edit_loading"
	case Editing:
		return "editing"
	case SaveConfirming:
		return "save_confirming"
	case Saving:
		return "saving"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Page is the part of a page hook the control drives.
type Page interface {
	Name() string
	SetEditMode(on bool)
	SaveData(ctx context.Context) bool
	PersistError() error
}

// Authorizer checks the password typed into the save confirmation.
type Authorizer interface {
	Authorize(ctx context.Context, username, password string) error
}

// Notifier is told about every completed save.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Notification describes a completed save.
type Notification struct {
	Realm     string
	Username  string
	Persisted bool
	Err       error
	At        time.Time
}

// Notifiers fans a notification out to several notifiers.
type Notifiers []Notifier

func (ns Notifiers) Notify(ctx context.Context, n Notification) {
	for _, notifier := range ns {
		notifier.Notify(ctx, n)
	}
}

// Delays are the fixed pauses played before edit mode opens and before a save is written.
type Delays struct {
	Edit time.Duration
	Save time.Duration
}

// SaveResult reports the outcome of a confirmed save.
type SaveResult struct {
	Persisted bool
	Err       error
}

// lease turns the page's edit mode on and off on behalf of a session.
type lease interface {
	acquire()
	release()
}

type directLease struct{ page Page }

func (l directLease) acquire() { l.page.SetEditMode(true) }
func (l directLease) release() { l.page.SetEditMode(false) }

// Session is one editor's pass through the edit/save control of one page.
type Session struct {
	id       string
	username string
	page     Page
	auth     Authorizer
	notifier Notifier
	delays   Delays
	logger   zerolog.Logger
	lease    lease
	sleep    func(ctx context.Context, d time.Duration) error
	now      func() time.Time

	mu         sync.Mutex
	state      State
	holding    bool
	lastActive time.Time
}

// Option configures a Session.
type Option func(*Session)

func WithDelays(d Delays) Option            { return func(s *Session) { s.delays = d } }
func WithLogger(l zerolog.Logger) Option    { return func(s *Session) { s.logger = l } }
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// WithNotifier sets who hears about completed saves. nil keeps the silent default.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// NewSession creates a session in Viewing. Edit mode is set directly on page.
func NewSession(id, username string, page Page, auth Authorizer, opts ...Option) *Session {
	s := &Session{
		id:       id,
		username: username,
		page:     page,
		auth:     auth,
		notifier: Notifiers(nil),
		logger:   zerolog.Nop(),
		lease:    directLease{page: page},
		sleep:    sleepContext,
		now:      time.Now,
		state:    Viewing,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastActive = s.now()
	return s
}

func (s *Session) ID() string       { return s.id }
func (s *Session) Username() string { return s.username }
func (s *Session) Realm() string    { return s.page.Name() }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastActive returns when the session last changed state.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// BeginEdit plays the edit delay and enters Editing with the page in edit mode.
// A cancelled ctx during the delay returns the session to Viewing.
func (s *Session) BeginEdit(ctx context.Context) error {
	if err := s.transition(Viewing, EditLoading); err != nil {
		return err
	}

	if err := s.sleep(ctx, s.delays.Edit); err != nil {
		s.set(Viewing)
		return err
	}

	s.lease.acquire()
	s.mu.Lock()
	s.holding = true
	s.state = Editing
	s.lastActive = s.now()
	s.mu.Unlock()

	s.logger.Info().Str("realm", s.Realm()).Str("session", s.id).Msg("Edit mode entered")
	return nil
}

// RequestSave opens the save confirmation.
func (s *Session) RequestSave() error {
	return s.transition(Editing, SaveConfirming)
}

// CancelSave closes the confirmation without writing anything.
func (s *Session) CancelSave() error {
	return s.transition(SaveConfirming, Editing)
}

// ConfirmSave checks password and, when it matches, plays the save delay, writes the
// page once, leaves edit mode and notifies. A wrong password keeps the confirmation open.
func (s *Session) ConfirmSave(ctx context.Context, password string) (SaveResult, error) {
	s.mu.Lock()
	if s.state != SaveConfirming {
		state := s.state
		s.mu.Unlock()
		return SaveResult{}, fmt.Errorf("%w: cannot confirm a save while %s", apperrors.ErrInvalidTransition, state)
	}
	s.mu.Unlock()

	if err := s.auth.Authorize(ctx, s.username, password); err != nil {
		s.logger.Warn().Err(err).Str("realm", s.Realm()).Str("session", s.id).Msg("Save confirmation rejected")
		return SaveResult{}, err
	}

	if err := s.transition(SaveConfirming, Saving); err != nil {
		return SaveResult{}, err
	}

	if err := s.sleep(ctx, s.delays.Save); err != nil {
		s.set(SaveConfirming)
		return SaveResult{}, err
	}

	result := SaveResult{Persisted: s.page.SaveData(ctx)}
	if !result.Persisted {
		result.Err = s.page.PersistError()
	}

	s.leave()

	s.logger.Info().
		Str("realm", s.Realm()).
		Str("session", s.id).
		Bool("persisted", result.Persisted).
		Msg("Page saved")

	s.notifier.Notify(ctx, Notification{
		Realm:     s.Realm(),
		Username:  s.username,
		Persisted: result.Persisted,
		Err:       result.Err,
		At:        s.now(),
	})
	return result, nil
}

// Close abandons the session, leaving edit mode without saving.
func (s *Session) Close() {
	s.leave()
}

// leave returns to Viewing and gives up edit mode. The lease is released outside s.mu.
func (s *Session) leave() {
	s.mu.Lock()
	holding := s.holding
	s.holding = false
	s.state = Viewing
	s.lastActive = s.now()
	s.mu.Unlock()

	if holding {
		s.lease.release()
	}
}

func (s *Session) transition(from, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != from {
		return fmt.Errorf("%w: %s -> %s from %s", apperrors.ErrInvalidTransition, from, to, s.state)
	}
	s.state = to
	s.lastActive = s.now()
	return nil
}

func (s *Session) set(state State) {
	s.mu.Lock()
	s.state = state
	s.lastActive = s.now()
	s.mu.Unlock()
}

// sleepContext waits d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
