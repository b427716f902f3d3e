package models

import (
	"sort"
	"strings"
	"time"

	"github.com/lmoren/ritual/internal/errors"
)

type Cadence string

const (
	CadenceDaily  Cadence = "daily"
	CadenceWeekly Cadence = "weekly"
)

// ParseCadence normalizes a user-supplied cadence string. Only "daily" and
// "weekly" are accepted, case-insensitively.
func ParseCadence(s string) (Cadence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(CadenceDaily):
		return CadenceDaily, nil
	case string(CadenceWeekly):
		return CadenceWeekly, nil
	default:
		return "", &errors.ValidationError{Field: "cadence", Value: s, Reason: "must be 'daily' or 'weekly'"}
	}
}

// PeriodDuration returns the wall-clock length of one cadence period.
// Used only for the empty-ledger grace period; streak math works on
// calendar dates, not elapsed hours.
func (c Cadence) PeriodDuration() time.Duration {
	if c == CadenceWeekly {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// Habit is a trackable habit plus its completion ledger. The ID is assigned
// by the storage layer; a habit that has not been persisted yet has ID 0.
type Habit struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Cadence     Cadence     `json:"cadence"`
	CreatedAt   time.Time   `json:"created_at"`
	Completions []time.Time `json:"completions,omitempty"`
}

// NewHabit validates and constructs a habit with an empty ledger.
func NewHabit(name, cadence string, createdAt time.Time) (Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Habit{}, &errors.ValidationError{Field: "name", Value: name, Reason: "must not be empty"}
	}
	c, err := ParseCadence(cadence)
	if err != nil {
		return Habit{}, err
	}
	return Habit{
		Name:      name,
		Cadence:   c,
		CreatedAt: createdAt,
	}, nil
}

// AddCompletion appends a completion timestamp, keeping the ledger sorted
// ascending. Sort order is an invariant every streak computation relies on.
func (h *Habit) AddCompletion(t time.Time) {
	i := sort.Search(len(h.Completions), func(i int) bool {
		return h.Completions[i].After(t)
	})
	h.Completions = append(h.Completions, time.Time{})
	copy(h.Completions[i+1:], h.Completions[i:])
	h.Completions[i] = t
}

// LastCompletion returns the most recent completion and true, or the zero
// time and false for an empty ledger.
func (h Habit) LastCompletion() (time.Time, bool) {
	if len(h.Completions) == 0 {
		return time.Time{}, false
	}
	return h.Completions[len(h.Completions)-1], true
}
