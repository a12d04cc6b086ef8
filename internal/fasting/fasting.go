// ABOUTME: Intermittent-fasting timer: disabled/idle/fasting/eating machine.
// ABOUTME: Phase changes are always caller-initiated; completion is signaled only.
package fasting

import (
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/store"
)

// Timer drives the fasting state machine over the blob store. Wall-clock
// time is read once per operation.
type Timer struct {
	store store.Store
	now   func() time.Time
}

// New creates a timer over the given store.
func New(s store.Store) *Timer {
	return &Timer{store: s, now: time.Now}
}

// WithClock overrides the time source.
func (t *Timer) WithClock(now func() time.Time) *Timer {
	t.now = now
	return t
}

// State returns the persisted fasting state, defaulting to disabled 16:8.
func (t *Timer) State() models.FastingState {
	return store.Load(t.store, store.KeyFasting, models.DefaultFastingState())
}

func (t *Timer) save(st models.FastingState) error {
	if err := store.Save(t.store, store.KeyFasting, st); err != nil {
		return fmt.Errorf("persist fasting state: %w", err)
	}
	return nil
}

// Enable turns the timer on or off. Disabling while a phase is running
// drops back to disabled without clearing timestamps; re-enabling resumes
// nothing. Timestamps are only cleared by End.
func (t *Timer) Enable(on bool) error {
	st := t.State()
	st.Enabled = on
	if !on {
		st.Phase = models.PhaseIdle
	}
	return t.save(st)
}

// SetMode changes the fasting schedule. The new mode applies to the next
// started phase; a running phase keeps its end time.
func (t *Timer) SetMode(mode models.Mode) error {
	st := t.State()
	st.Mode = mode
	return t.save(st)
}

// StartFasting begins a fasting phase from idle or eating.
func (t *Timer) StartFasting() error {
	st := t.State()
	if !st.Enabled {
		return fmt.Errorf("fasting timer is disabled")
	}
	if st.Phase == models.PhaseFasting {
		return fmt.Errorf("already fasting")
	}

	now := t.now()
	end := now.Add(time.Duration(st.Mode.FastHours) * time.Hour)
	st.Phase = models.PhaseFasting
	st.PhaseStart = &now
	st.PhaseEnd = &end
	return t.save(st)
}

// StartEating begins an eating window. Only valid while fasting.
func (t *Timer) StartEating() error {
	st := t.State()
	if !st.Enabled {
		return fmt.Errorf("fasting timer is disabled")
	}
	if st.Phase != models.PhaseFasting {
		return fmt.Errorf("not fasting")
	}

	now := t.now()
	end := now.Add(time.Duration(st.Mode.EatHours) * time.Hour)
	st.Phase = models.PhaseEating
	st.PhaseStart = &now
	st.PhaseEnd = &end
	return t.save(st)
}

// Toggle starts eating if currently fasting, otherwise starts fasting.
func (t *Timer) Toggle() error {
	if t.State().Phase == models.PhaseFasting {
		return t.StartEating()
	}
	return t.StartFasting()
}

// End stops the current phase and clears both timestamps.
func (t *Timer) End() error {
	st := t.State()
	if st.Phase == models.PhaseIdle {
		return fmt.Errorf("no active phase")
	}
	st.Phase = models.PhaseIdle
	st.PhaseStart = nil
	st.PhaseEnd = nil
	return t.save(st)
}

// Status is a point-in-time view of the timer.
type Status struct {
	Enabled        bool          `json:"enabled"`
	Mode           models.Mode   `json:"mode"`
	Phase          models.Phase  `json:"phase"`
	Elapsed        time.Duration `json:"-"`
	ElapsedHours   int           `json:"elapsed_hours"`
	ElapsedMinutes int           `json:"elapsed_minutes"`
	Remaining      time.Duration `json:"-"`
	Progress       float64       `json:"progress"`
	Complete       bool          `json:"complete"`
}

// Status reports elapsed, remaining, progress, and completion for the
// current phase. Completion is a signal for the caller to prompt a phase
// switch; the machine never auto-transitions.
func (t *Timer) Status() Status {
	st := t.State()
	s := Status{Enabled: st.Enabled, Mode: st.Mode, Phase: st.Phase}
	if st.Phase == models.PhaseIdle || st.PhaseStart == nil || st.PhaseEnd == nil {
		return s
	}

	now := t.now()
	s.Elapsed = now.Sub(*st.PhaseStart)
	s.ElapsedHours = int(s.Elapsed.Hours())
	s.ElapsedMinutes = int(s.Elapsed.Minutes()) % 60

	s.Remaining = st.PhaseEnd.Sub(now)
	if s.Remaining < 0 {
		s.Remaining = 0
	}

	total := st.PhaseEnd.Sub(*st.PhaseStart)
	if total > 0 {
		s.Progress = float64(s.Elapsed) / float64(total) * 100
		if s.Progress < 0 {
			s.Progress = 0
		}
		if s.Progress > 100 {
			s.Progress = 100
		}
	}
	s.Complete = st.PhaseEnd.Sub(now) <= 0
	return s
}
