package theme

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/luminance/internal/logger"
	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

// DefaultPersistTimeout bounds every storage read and write.
const DefaultPersistTimeout = 250 * time.Millisecond

// Listener receives the new state after every change.
type Listener func(State)

// Options configures a Store.
type Options struct {
	// StorageKey names the persisted entry. Defaults to DefaultStorageKey.
	StorageKey string
	// Storage persists the preference. Defaults to an in-memory store.
	Storage Storage
	// Signal reports the environment light/dark signal. Defaults to NoSignal.
	Signal Signal
	// Default is used when no valid preference is persisted. Defaults to dark.
	Default Preference
	// PersistTimeout bounds storage calls. Defaults to DefaultPersistTimeout.
	PersistTimeout time.Duration
	Logger         *logger.Logger
}

type subscription struct {
	id uint64
	fn Listener
}

// Store owns the theme state for one application root. It is safe for
// concurrent use; listeners run synchronously on the goroutine that caused
// the change, in subscription order, after the state lock is released.
type Store struct {
	key     string
	storage Storage
	timeout time.Duration
	log     *logger.Logger

	mu          sync.Mutex
	state       State
	signal      Effective
	signalKnown bool
	listeners   []subscription
	nextID      uint64

	// writeMu serialises saves; writeGen is the generation of the latest
	// requested save. A save that lost the race to a newer one is skipped.
	writeMu  sync.Mutex
	writeGen atomic.Uint64

	degraded   atomic.Bool
	stopSignal func()
	closeOnce  sync.Once
}

// NewStore reads the persisted preference and computes the initial state.
// Storage failures never fail construction; the store degrades to memory only.
func NewStore(opts Options) (*Store, error) {
	def := opts.Default
	if def == "" {
		def = DefaultPreference
	}
	if !def.Valid() {
		return nil, fmt.Errorf("default preference: %w", lumerrors.NewInvalidPreferenceError(string(def)))
	}

	key := opts.StorageKey
	if key == "" {
		key = DefaultStorageKey
	}
	storage := opts.Storage
	if storage == nil {
		storage = NewMemoryStorage()
	}
	signal := opts.Signal
	if signal == nil {
		signal = NoSignal{}
	}
	timeout := opts.PersistTimeout
	if timeout <= 0 {
		timeout = DefaultPersistTimeout
	}

	s := &Store{
		key:     key,
		storage: storage,
		timeout: timeout,
		log:     opts.Logger.WithFields(map[string]any{"storage_key": key}),
	}

	pref := s.loadPreference(def)

	// Watch before reading so a change in between is not lost; an early
	// notification waits on mu until the initial state is in place.
	s.mu.Lock()
	s.stopSignal = signal.Watch(s.handleSignal)
	s.signal, s.signalKnown = signal.Current()
	s.state = State{Preference: pref, Effective: Resolve(pref, s.signal, s.signalKnown)}
	s.mu.Unlock()

	return s, nil
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Preference returns the current preference.
func (s *Store) Preference() Preference {
	return s.State().Preference
}

// Effective returns the current effective theme.
func (s *Store) Effective() Effective {
	return s.State().Effective
}

// Degraded reports whether a storage call has failed since the store was created.
func (s *Store) Degraded() bool {
	return s.degraded.Load()
}

// SetPreference validates p, updates the state, persists p and notifies listeners.
// An invalid preference is rejected with an *errors.InvalidPreferenceError and
// leaves the state unchanged. Persistence failures are logged, not returned.
func (s *Store) SetPreference(p Preference) error {
	if !p.Valid() {
		return lumerrors.NewInvalidPreferenceError(string(p))
	}

	s.mu.Lock()
	s.state = State{Preference: p, Effective: Resolve(p, s.signal, s.signalKnown)}
	next := s.state
	listeners := s.snapshotListeners()
	gen := s.writeGen.Add(1)
	s.mu.Unlock()

	s.persist(p, gen)
	s.notify(listeners, next)
	return nil
}

// Subscribe registers fn and returns a function that removes it. The returned
// function is idempotent.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Close stops watching the environment signal. The store remains readable.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		if s.stopSignal != nil {
			s.stopSignal()
		}
	})
}

func (s *Store) handleSignal(signal Effective) {
	s.mu.Lock()
	s.signal, s.signalKnown = signal, true
	if s.state.Preference != PreferenceSystem {
		s.mu.Unlock()
		return
	}
	s.state.Effective = Resolve(PreferenceSystem, signal, true)
	next := s.state
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.notify(listeners, next)
}

// snapshotListeners must be called with s.mu held.
func (s *Store) snapshotListeners() []subscription {
	return append([]subscription(nil), s.listeners...)
}

func (s *Store) notify(listeners []subscription, state State) {
	for _, sub := range listeners {
		s.invoke(sub, state)
	}
}

func (s *Store) invoke(sub subscription, state State) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(map[string]any{"subscriber": sub.id}).
				Error(fmt.Errorf("panic: %v", r), "theme subscriber failed")
		}
	}()
	sub.fn(state)
}

func (s *Store) loadPreference(def Preference) Preference {
	var (
		value string
		found bool
	)
	err := s.bounded(func(ctx context.Context) error {
		var err error
		value, found, err = s.storage.Load(ctx, s.key)
		return err
	})
	if err != nil {
		s.markDegraded(lumerrors.NewPersistenceError("read", s.key, err))
		return def
	}
	if !found {
		return def
	}

	p, err := ParsePreference(value)
	if err != nil {
		s.log.Warn(err, "ignoring persisted theme preference")
		return def
	}
	return p
}

// persist saves p unless a newer preference was requested by the time this
// save gets its turn. A timed out save keeps its turn, so saves reach the
// backend in request order and the last one requested lands last.
func (s *Store) persist(p Preference, gen uint64) {
	err := s.bounded(func(ctx context.Context) error {
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		if s.writeGen.Load() != gen {
			return nil
		}
		if ctx.Err() != nil {
			// The caller stopped waiting while an older save held the turn.
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
			defer cancel()
		}
		return s.storage.Save(ctx, s.key, string(p))
	})
	if err != nil {
		s.markDegraded(lumerrors.NewPersistenceError("write", s.key, err))
	}
}

func (s *Store) markDegraded(err error) {
	s.degraded.Store(true)
	s.log.Warn(err, "theme storage unavailable, continuing in memory")
}

// bounded runs fn with a deadline and returns once fn finishes or the deadline
// passes, whichever is first. A backend that ignores ctx keeps running in the
// background but can no longer block the caller.
func (s *Store) bounded(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("storage panic: %v", r)
			}
		}()
		done <- fn(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
