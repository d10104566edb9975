// Package theme tracks the light/dark theme preference of an application.
//
// A Store holds a tri-state Preference (light, dark or follow the system), the
// environment's light/dark Signal, and the Effective theme derived from both.
// Only the preference is persisted; the effective theme is always recomputed.
//
//	store, err := theme.NewStore(theme.Options{
//		Storage: theme.NewFileStorage(dir),
//		Signal:  theme.TerminalSignal(),
//	})
//	unsubscribe := store.Subscribe(func(s theme.State) { redraw(s.Effective) })
//	defer unsubscribe()
//	_ = store.SetPreference(theme.PreferenceSystem)
package theme

import (
	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

// Preference is the user's requested theme.
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"
)

// DefaultPreference is used when nothing valid has been persisted.
const DefaultPreference = PreferenceDark

// DefaultStorageKey names the durable entry holding the preference.
const DefaultStorageKey = "luminance-ui-theme"

// Valid reports whether p is one of the three known preferences.
func (p Preference) Valid() bool {
	switch p {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return true
	default:
		return false
	}
}

func (p Preference) String() string {
	return string(p)
}

// ParsePreference converts a stored or user-supplied literal into a Preference.
func ParsePreference(value string) (Preference, error) {
	p := Preference(value)
	if !p.Valid() {
		return "", lumerrors.NewInvalidPreferenceError(value)
	}
	return p, nil
}

// Effective is the concrete rendering mode after resolving a Preference.
type Effective string

const (
	EffectiveLight Effective = "light"
	EffectiveDark  Effective = "dark"
)

// IsDark reports whether e is the dark theme.
func (e Effective) IsDark() bool {
	return e == EffectiveDark
}

func (e Effective) String() string {
	return string(e)
}

// State is a snapshot of a Store.
type State struct {
	Preference Preference
	Effective  Effective
}

// Resolve computes the effective theme for p given the environment signal.
// known is false when the environment cannot report a signal, in which case
// System resolves to dark.
func Resolve(p Preference, signal Effective, known bool) Effective {
	switch p {
	case PreferenceLight:
		return EffectiveLight
	case PreferenceSystem:
		if known && signal == EffectiveLight {
			return EffectiveLight
		}
		return EffectiveDark
	default:
		return EffectiveDark
	}
}
