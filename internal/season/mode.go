package season

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Mode is a concrete visual theme.
type Mode string

const (
	Spring Mode = "spring"
	Summer Mode = "summer"
	Autumn Mode = "autumn"
	Winter Mode = "winter"
	None   Mode = "none"
)

// Preference is what the user stored. It is a Mode or Auto.
type Preference string

const Auto Preference = "auto"

var ErrUnknownToken = errors.New("unknown mode token")

// Modes lists the concrete modes in control order.
func Modes() []Mode {
	return []Mode{Spring, Summer, Autumn, Winter, None}
}

// Preferences lists every storable preference in control order.
func Preferences() []Preference {
	return []Preference{Auto, Preference(Spring), Preference(Summer), Preference(Autumn), Preference(Winter), Preference(None)}
}

// ParsePreference validates a token. Surrounding space and case are ignored.
func ParsePreference(token string) (Preference, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, p := range Preferences() {
		if string(p) == token {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownToken, "%q", token)
}

// IsSeason reports whether m is one of the four seasons.
func (m Mode) IsSeason() bool {
	switch m {
	case Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}

func (m Mode) String() string { return string(m) }

func (p Preference) String() string { return string(p) }

// SeasonForDate maps the calendar month to a Northern-hemisphere season.
func SeasonForDate(t time.Time) Mode {
	switch m := t.Month(); {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Autumn
	}
	return Winter
}

// ActiveMode resolves a preference against now. Anything other than Auto is
// returned unchanged, unknown tokens included.
func ActiveMode(p Preference, now time.Time) Mode {
	if p == Auto {
		return SeasonForDate(now)
	}
	return Mode(p)
}
