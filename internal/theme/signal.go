package theme

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Signal reports the environment's light/dark preference.
type Signal interface {
	// Current returns the signal; known is false when the environment cannot tell.
	Current() (signal Effective, known bool)
	// Watch calls fn whenever the signal changes and returns a function that stops it.
	Watch(fn func(Effective)) (stop func())
}

// NoSignal is an environment that never reports a preference.
type NoSignal struct{}

func (NoSignal) Current() (Effective, bool) { return "", false }

func (NoSignal) Watch(func(Effective)) func() { return func() {} }

// ManualSignal is a Signal driven by the host application.
type ManualSignal struct {
	// deliver orders notifications: concurrent Sets reach watchers in the
	// order their values were applied. Watchers must not call Set.
	deliver  sync.Mutex
	mu       sync.Mutex
	value    Effective
	known    bool
	watchers map[int]func(Effective)
	nextID   int
}

// NewManualSignal starts with the given signal.
func NewManualSignal(initial Effective) *ManualSignal {
	return &ManualSignal{value: initial, known: initial != "", watchers: map[int]func(Effective){}}
}

func (m *ManualSignal) Current() (Effective, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.known
}

func (m *ManualSignal) Watch(fn func(Effective)) func() {
	m.mu.Lock()
	if m.watchers == nil {
		m.watchers = map[int]func(Effective){}
	}
	id := m.nextID
	m.nextID++
	m.watchers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.watchers, id)
		m.mu.Unlock()
	}
}

// Set updates the signal and notifies watchers when it changed.
func (m *ManualSignal) Set(value Effective) {
	m.deliver.Lock()
	defer m.deliver.Unlock()

	m.mu.Lock()
	if m.known && m.value == value {
		m.mu.Unlock()
		return
	}
	m.value, m.known = value, true
	watchers := make([]func(Effective), 0, len(m.watchers))
	for i := 0; i < m.nextID; i++ {
		if fn, ok := m.watchers[i]; ok {
			watchers = append(watchers, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range watchers {
		fn(value)
	}
}

// TerminalDetector is the terminal background probe.
type TerminalDetector func() (Effective, bool)

// DetectTerminal queries the terminal background colour. It reports unknown
// when stdout is not a terminal.
func DetectTerminal() (Effective, bool) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", false
	}
	if lipgloss.HasDarkBackground() {
		return EffectiveDark, true
	}
	return EffectiveLight, true
}

// TermSignal derives the signal from the terminal background. Terminals do not
// push background changes, so hosts call Refresh when they want a re-probe
// (for example on a focus event).
type TermSignal struct {
	*ManualSignal
	detect TerminalDetector
}

// TerminalSignal probes the current terminal.
func TerminalSignal() *TermSignal {
	return NewTermSignal(DetectTerminal)
}

// NewTermSignal builds a terminal signal around a custom detector.
func NewTermSignal(detect TerminalDetector) *TermSignal {
	s := &TermSignal{ManualSignal: &ManualSignal{watchers: map[int]func(Effective){}}, detect: detect}
	if value, ok := detect(); ok {
		s.value, s.known = value, true
	}
	return s
}

// Refresh re-probes the terminal and notifies watchers on change.
func (s *TermSignal) Refresh() {
	if value, ok := s.detect(); ok {
		s.Set(value)
	}
}
