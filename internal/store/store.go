package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/vms/backend/internal/domain/procurement"
	"go.uber.org/zap"
)

// Gateway mirrors snapshots to durable storage. Saving is best-effort: a
// failed save never rolls back or retries, and the in-memory snapshot stays
// the source of truth for the rest of the session.
type Gateway interface {
	Save(state State) error
}

// Store is the single-writer state container. One intent is fully applied to
// produce the next snapshot before the next intent is accepted; readers
// always see a fully-formed immutable snapshot.
type Store struct {
	mu       sync.Mutex
	state    State
	gateway  Gateway
	log      *zap.Logger
	migrated bool
}

// New creates a store over the given initial snapshot. gateway may be nil
// for callers that do not persist (tests, dry runs).
func New(initial State, gateway Gateway, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		state:   initial,
		gateway: gateway,
		log:     log,
	}
}

// Snapshot returns the current state. The returned value must be treated as
// immutable; all changes go through Dispatch.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies an intent through the reducer and mirrors the new
// snapshot to the gateway. Persistence failures are logged and swallowed.
func (s *Store) Dispatch(intent Intent) State {
	s.mu.Lock()
	next := Reduce(s.state, intent)
	s.state = next
	s.mu.Unlock()

	if s.gateway != nil {
		if err := s.gateway.Save(next); err != nil {
			s.log.Warn("state persist failed, continuing on in-memory snapshot", zap.Error(err))
		}
	}
	return next
}

// MigrateDefaultDepartments appends any default department names missing
// from the loaded settings directory, with a placeholder head of department.
// It runs at most once per session.
func (s *Store) MigrateDefaultDepartments() {
	s.mu.Lock()
	if s.migrated {
		s.mu.Unlock()
		return
	}
	s.migrated = true
	missing := s.state.Settings.MissingDefaultDepartments()
	s.mu.Unlock()

	if len(missing) == 0 {
		return
	}

	snap := s.Snapshot()
	settings := snap.Settings
	departments := make([]procurement.DepartmentInfo, 0, len(settings.Departments)+len(missing))
	departments = append(departments, settings.Departments...)
	for _, name := range missing {
		departments = append(departments, procurement.DepartmentInfo{
			ID:   uuid.New(),
			Name: name,
			HoD:  "TBD",
		})
	}
	settings.Departments = departments

	s.log.Info("settings migration: appended default departments", zap.Strings("departments", missing))
	s.Dispatch(UpdateSettings{Settings: settings})
}
