package lunarphase

import (
	"fmt"
	"strings"

	"github.com/thurmanmarka/lunarphase/internal/lunation"
)

// Phase is one of the eight named lunar phases. The numeric order is the
// order the phases occur in within a lunation, starting at new moon.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// NumPhases is the number of named phases in a lunation.
const NumPhases = 8

// NoPhase is returned alongside an error when no phase could be determined.
const NoPhase Phase = -1

var phaseNames = [NumPhases]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

var phaseKeys = [NumPhases]string{
	"new_moon",
	"waxing_crescent",
	"first_quarter",
	"waxing_gibbous",
	"full_moon",
	"waning_gibbous",
	"last_quarter",
	"waning_crescent",
}

// phaseQuadrant maps each phase onto the principal phase whose corrections
// it uses. Intermediate phases share the lunation index of the quadrant
// before them and are shifted by an eighth of a synodic month.
var phaseQuadrant = [NumPhases]lunation.Quadrant{
	lunation.New, lunation.New,
	lunation.First, lunation.First,
	lunation.Full, lunation.Full,
	lunation.Last, lunation.Last,
}

// Valid reports whether p is one of the eight named phases.
func (p Phase) Valid() bool {
	return p >= NewMoon && p <= WaningCrescent
}

// String returns the human readable name, e.g. "Waxing Gibbous".
func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Key returns the snake_case identifier used in JSON and on the command
// line, e.g. "waxing_gibbous".
func (p Phase) Key() string {
	if !p.Valid() {
		return ""
	}
	return phaseKeys[p]
}

// Next returns the phase that follows p, wrapping from WaningCrescent to
// NewMoon.
func (p Phase) Next() Phase {
	return (p + 1) % NumPhases
}

// Intermediate reports whether p is one of the four phases between the
// principal ones (the crescents and the gibbous phases).
func (p Phase) Intermediate() bool {
	return p%2 == 1
}

func (p Phase) quadrant() lunation.Quadrant {
	return phaseQuadrant[p]
}

// MarshalText encodes p as its key.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPhase, int(p))
	}
	return []byte(phaseKeys[p]), nil
}

// UnmarshalText accepts anything ParsePhase does.
func (p *Phase) UnmarshalText(b []byte) error {
	parsed, err := ParsePhase(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePhase accepts a phase key ("first_quarter") or name ("First
// Quarter"), case-insensitively. Hyphens and spaces are treated as
// underscores.
func ParsePhase(s string) (Phase, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)

	for i, key := range phaseKeys {
		if key == norm {
			return Phase(i), nil
		}
	}
	return NoPhase, fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}
