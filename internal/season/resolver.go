package season

import (
	"seasonfx/internal/utils"
)

// PreferenceKey is the store key holding the user's preference.
const PreferenceKey = "site_fx_mode"

// Store is the persisted key-value capability the resolver and the controls
// need. Read reports false when the key is absent or unreadable.
type Store interface {
	Read(key string) (string, bool)
	Write(key, value string) error
}

// Resolver derives the active mode from the stored preference and a clock.
type Resolver struct {
	store Store
	clock Clock
}

func NewResolver(store Store, clock Clock) *Resolver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{store: store, clock: clock}
}

// ResolvePreference returns the stored preference, or Auto when it is absent,
// empty or not a known token.
func (r *Resolver) ResolvePreference() Preference {
	if r.store == nil {
		return Auto
	}
	raw, ok := r.store.Read(PreferenceKey)
	if !ok || raw == "" {
		return Auto
	}
	pref, err := ParsePreference(raw)
	if err != nil {
		utils.Warn("Ignoring stored preference: %v", err)
		return Auto
	}
	return pref
}

// Active resolves the stored preference against the clock.
func (r *Resolver) Active() Mode {
	return ActiveMode(r.ResolvePreference(), r.clock.Now())
}

// Resolve resolves an arbitrary preference against the clock.
func (r *Resolver) Resolve(p Preference) Mode {
	return ActiveMode(p, r.clock.Now())
}
