// internal/domain/preferences.go
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPreferences is wrapped by every preference validation failure.
var ErrInvalidPreferences = errors.New("invalid preferences")

// UserPreferences are the onboarding answers a program is generated from.
type UserPreferences struct {
	Level        Level     `bson:"level" json:"level"`
	Goal         Goal      `bson:"goal" json:"goal"`
	Diet         Diet      `bson:"diet" json:"diet"`
	SelectedDays []Weekday `bson:"selectedDays" json:"selectedDays"`
	DaysPerWeek  int       `bson:"daysPerWeek" json:"daysPerWeek"`
}

// Normalize fills in DaysPerWeek when the caller left it out.
func (p *UserPreferences) Normalize() {
	if p.DaysPerWeek == 0 {
		p.DaysPerWeek = len(p.SelectedDays)
	}
}

// Validate rejects unknown enum values and malformed day selections.
func (p UserPreferences) Validate() error {
	if !p.Level.Valid() {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidPreferences, p.Level)
	}
	if !p.Goal.ValidForUser() {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidPreferences, p.Goal)
	}
	if !p.Diet.Valid() {
		return fmt.Errorf("%w: unknown diet %q", ErrInvalidPreferences, p.Diet)
	}
	if len(p.SelectedDays) == 0 || len(p.SelectedDays) > len(Week) {
		return fmt.Errorf("%w: between 1 and 7 training days required, got %d", ErrInvalidPreferences, len(p.SelectedDays))
	}
	seen := make(map[Weekday]bool, len(p.SelectedDays))
	for _, d := range p.SelectedDays {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidPreferences, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: weekday %q selected twice", ErrInvalidPreferences, d)
		}
		seen[d] = true
	}
	if p.DaysPerWeek != len(p.SelectedDays) {
		return fmt.Errorf("%w: daysPerWeek %d does not match %d selected days", ErrInvalidPreferences, p.DaysPerWeek, len(p.SelectedDays))
	}
	return nil
}

// Clone returns a copy that does not share the SelectedDays backing array.
func (p UserPreferences) Clone() UserPreferences {
	out := p
	out.SelectedDays = append([]Weekday(nil), p.SelectedDays...)
	return out
}
