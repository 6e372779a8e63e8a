// Package controls connects mode controls to the preference store and the
// particle pools.
package controls

import (
	"seasonfx/internal/season"
	"seasonfx/internal/utils"
)

// Rebuilder replaces the entity pools for a mode.
type Rebuilder interface {
	Rebuild(mode season.Mode)
}

// Control is one activatable element carrying a preference token.
type Control struct {
	Token  string
	Label  string
	Active bool
}

// DefaultTokens lists the control tokens in display order.
func DefaultTokens() []string {
	prefs := season.Preferences()
	tokens := make([]string, len(prefs))
	for i, p := range prefs {
		tokens[i] = string(p)
	}
	return tokens
}

var labels = map[string]string{
	"auto":   "Auto",
	"spring": "Spring",
	"summer": "Summer",
	"autumn": "Autumn",
	"winter": "Winter",
	"none":   "Off",
}

func Label(token string) string {
	if l, ok := labels[token]; ok {
		return l
	}
	return token
}

// Binding owns the controls and applies activations. Tokens are used as
// given; unknown ones reach Rebuild unchanged.
type Binding struct {
	controls []Control
	store    season.Store
	resolver *season.Resolver
	target   Rebuilder
}

func NewBinding(tokens []string, store season.Store, clock season.Clock, target Rebuilder) *Binding {
	controls := make([]Control, len(tokens))
	for i, t := range tokens {
		controls[i] = Control{Token: t, Label: Label(t)}
	}
	return &Binding{
		controls: controls,
		store:    store,
		resolver: season.NewResolver(store, clock),
		target:   target,
	}
}

// Init marks the control for the stored preference and builds its pools. The
// store is not written.
func (b *Binding) Init() season.Mode {
	pref := b.resolver.ResolvePreference()
	b.Mark(string(pref))
	mode := b.resolver.Resolve(pref)
	b.target.Rebuild(mode)
	utils.Info("Preference %s resolves to %s", pref, mode)
	return mode
}

// Activate persists token, marks its control and rebuilds the pools for the
// resolved mode. A failed write is logged and the switch still happens.
func (b *Binding) Activate(token string) season.Mode {
	if b.store != nil {
		if err := b.store.Write(season.PreferenceKey, token); err != nil {
			utils.Error("Failed to store preference %q: %v", token, err)
		}
	}
	return b.apply(token)
}

// Preview switches to token for this session only.
func (b *Binding) Preview(token string) season.Mode {
	return b.apply(token)
}

func (b *Binding) apply(token string) season.Mode {
	mode := b.resolver.Resolve(season.Preference(token))
	b.Mark(token)
	b.target.Rebuild(mode)
	utils.Info("Switched to %s (%s)", mode, token)
	return mode
}

// Mark makes the control carrying token the only active one.
func (b *Binding) Mark(token string) {
	for i := range b.controls {
		b.controls[i].Active = b.controls[i].Token == token
	}
}

// Controls returns a copy of the controls in display order.
func (b *Binding) Controls() []Control {
	return append([]Control(nil), b.controls...)
}

func (b *Binding) Len() int { return len(b.controls) }

// Token returns the token of control i.
func (b *Binding) Token(i int) (string, bool) {
	if i < 0 || i >= len(b.controls) {
		return "", false
	}
	return b.controls[i].Token, true
}

// ActiveToken returns the token of the active control.
func (b *Binding) ActiveToken() (string, bool) {
	for _, c := range b.controls {
		if c.Active {
			return c.Token, true
		}
	}
	return "", false
}
