package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sauravjha/registrar/internal/app/models"
	"github.com/sauravjha/registrar/internal/pkg/apperrors"
	"github.com/sauravjha/registrar/internal/pkg/metrics"
	"github.com/sauravjha/registrar/internal/storage"
)

// DefaultToastDuration is how long a toast stays up before auto-dismissal.
const DefaultToastDuration = 3 * time.Second

// Store owns the current state and serializes all mutation through Dispatch.
// Data-mutating actions trigger a best-effort snapshot save; a save failure
// is logged and never rolls back the in-memory transition.
type Store struct {
	mu      sync.Mutex
	state   State
	slot    storage.Slot
	logger  zerolog.Logger
	metrics *metrics.Metrics

	toastDuration time.Duration
	toastTimer    *time.Timer
	toastGen      uint64
}

// Option configures a Store.
type Option func(*Store)

// WithMetrics attaches Prometheus collectors to the dispatch loop.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithToastDuration overrides the toast auto-dismiss delay.
func WithToastDuration(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.toastDuration = d
		}
	}
}

// New creates a store with the initial state. slot may be nil, in which case
// nothing persists (used by tests).
func New(slot storage.Slot, lgr zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		state:         NewState(),
		slot:          slot,
		logger:        lgr,
		toastDuration: DefaultToastDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state snapshot. The value is safe to read
// concurrently with dispatches; collections are never mutated in place.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces the action into a new state, persists the data collections
// when the action kind calls for it, and returns the new state.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(action)
}

// Update runs fn and the dispatch of the actions it returns inside one
// critical section, so cross-collection checks (uniqueness, capacity,
// duplicate registrations) cannot be invalidated by a concurrent dispatch
// between validation and apply. fn must not call back into the store. A
// non-nil error from fn leaves the state untouched.
func (s *Store) Update(fn func(State) ([]Action, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions, err := fn(s.state)
	if err != nil {
		return s.state, err
	}
	for _, action := range actions {
		s.dispatchLocked(action)
	}
	return s.state, nil
}

func (s *Store) dispatchLocked(action Action) State {
	newState := Reduce(s.state, action)
	s.state = newState

	if s.metrics != nil {
		s.metrics.ActionsTotal.WithLabelValues(string(action.Kind())).Inc()
	}

	if persists(action.Kind()) && s.slot != nil {
		if s.metrics != nil {
			s.metrics.SnapshotSaves.Inc()
		}
		if err := s.slot.Save(context.Background(), newState.Data()); err != nil {
			if s.metrics != nil {
				s.metrics.SaveFailures.Inc()
			}
			s.logger.Warn().Err(err).Str("action", string(action.Kind())).Msg("Failed to save snapshot")
		}
	}

	switch action.Kind() {
	case KindShowToast:
		s.scheduleToastDismissLocked()
	case KindHideToast:
		s.cancelToastTimerLocked()
	}

	return newState
}

// scheduleToastDismissLocked arms the auto-dismiss timer, replacing any timer
// armed for a previous toast. Each toast gets a generation stamp; a callback
// whose generation is no longer current has been pre-empted and must not
// dismiss the toast that replaced its own. Stopping the timer is not enough
// because a fired callback can already be waiting on the mutex.
func (s *Store) scheduleToastDismissLocked() {
	s.cancelToastTimerLocked()
	gen := s.toastGen
	s.toastTimer = time.AfterFunc(s.toastDuration, func() {
		s.dismissToast(gen)
	})
}

func (s *Store) dismissToast(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.toastGen {
		return
	}
	s.dispatchLocked(HideToast{})
}

func (s *Store) cancelToastTimerLocked() {
	s.toastGen++
	if s.toastTimer != nil {
		s.toastTimer.Stop()
		s.toastTimer = nil
	}
}

// Confirm resolves the pending action of the open confirm dialog, dispatches
// it, and closes the dialog. It fails only when no confirmation is pending.
// The returned PendingAction is the one that actually ran; it is nil when the
// pending target id had since disappeared and the dialog closed silently.
func (s *Store) Confirm() (State, *PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dialog := s.state.UI.ConfirmDialog
	if !dialog.IsOpen || dialog.Pending == nil {
		return s.state, nil, apperrors.ErrNoPendingAction
	}

	pending := *dialog.Pending
	action := resolvePending(s.state, pending)

	var resolved *PendingAction
	if action != nil {
		s.dispatchLocked(action)
		resolved = &pending
	}
	return s.dispatchLocked(HideConfirmDialog{}), resolved, nil
}

// resolvePending maps a tagged pending value to its action. Unknown kinds and
// dangling ids resolve to nil.
func resolvePending(state State, pending PendingAction) Action {
	switch pending.Kind {
	case KindDeleteCourseType:
		if state.FindCourseType(pending.ID) == nil {
			return nil
		}
		return DeleteCourseType{ID: pending.ID}
	case KindDeleteCourse:
		if state.FindCourse(pending.ID) == nil {
			return nil
		}
		return DeleteCourse{ID: pending.ID}
	case KindDeleteOffering:
		if state.FindOffering(pending.ID) == nil {
			return nil
		}
		return DeleteOffering{ID: pending.ID}
	case KindDeleteStudent:
		if state.FindStudent(pending.ID) == nil {
			return nil
		}
		return DeleteStudent{ID: pending.ID}
	case KindDeleteRegistration:
		if state.FindRegistration(pending.ID) == nil {
			return nil
		}
		return DeleteRegistration{ID: pending.ID}
	case KindCancelRegistration:
		reg := state.FindRegistration(pending.ID)
		if reg == nil {
			return nil
		}
		cancelled := *reg
		cancelled.Status = models.StatusCancelled
		return UpdateRegistration{Registration: cancelled}
	default:
		return nil
	}
}

// Close stops the toast timer. The store stays usable; Close only exists so
// shutdown does not leak a pending timer callback.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelToastTimerLocked()
}
