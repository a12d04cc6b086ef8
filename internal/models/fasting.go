// ABOUTME: Fasting state model and the H:E mode parser.
// ABOUTME: The mode travels as a string ("16:8") but is structured internally.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Phase is the fasting engine's current sub-state within an enabled cycle.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseFasting Phase = "fasting"
	PhaseEating  Phase = "eating"
)

// Mode is a fasting schedule: FastHours of fasting followed by EatHours of
// eating window.
type Mode struct {
	FastHours int
	EatHours  int
}

// DefaultMode is the 16:8 schedule.
var DefaultMode = Mode{FastHours: 16, EatHours: 8}

// ParseMode parses a "fast:eat" hour pair such as "16:8".
func ParseMode(s string) (Mode, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Mode{}, fmt.Errorf("invalid fasting mode %q (want H:E, e.g. 16:8)", s)
	}
	fast, err := strconv.Atoi(parts[0])
	if err != nil {
		return Mode{}, fmt.Errorf("invalid fasting hours %q", parts[0])
	}
	eat, err := strconv.Atoi(parts[1])
	if err != nil {
		return Mode{}, fmt.Errorf("invalid eating hours %q", parts[1])
	}
	if fast <= 0 || eat <= 0 {
		return Mode{}, fmt.Errorf("fasting mode hours must be positive, got %d:%d", fast, eat)
	}
	return Mode{FastHours: fast, EatHours: eat}, nil
}

// String returns the H:E encoding used in the persisted layout.
func (m Mode) String() string {
	return fmt.Sprintf("%d:%d", m.FastHours, m.EatHours)
}

// MarshalText implements encoding.TextMarshaler so the stored JSON keeps
// the compact "16:8" form.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An unparseable mode
// degrades to the default schedule rather than failing the whole blob.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		*m = DefaultMode
		return nil
	}
	*m = parsed
	return nil
}

// FastingState is the persisted state of the fasting timer. Mutated only
// through the timer's transition operations.
type FastingState struct {
	Enabled    bool       `json:"enabled"`
	Mode       Mode       `json:"mode"`
	Phase      Phase      `json:"phase"`
	PhaseStart *time.Time `json:"phase_start"`
	PhaseEnd   *time.Time `json:"phase_end"`
}

// DefaultFastingState returns the disabled 16:8 state used when the store
// has no fasting blob yet.
func DefaultFastingState() FastingState {
	return FastingState{
		Enabled: false,
		Mode:    DefaultMode,
		Phase:   PhaseIdle,
	}
}
