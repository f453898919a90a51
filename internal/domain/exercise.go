// internal/domain/exercise.go
package domain

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSets is used when an exercise document has no sets value.
const DefaultSets = 3

// Exercise represents a single exercise definition in the admin-curated catalog.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    Category           `bson:"category" json:"category"`
	Level       Level              `bson:"level" json:"level"`
	Equipment   string             `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g. "bodyweight", "barbell"
	Sets        int                `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps        string             `bson:"reps,omitempty" json:"reps,omitempty"` // free-form range, e.g. "8-12"
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveSets returns Sets, or DefaultSets when unset.
func (e *Exercise) EffectiveSets() int {
	if e.Sets <= 0 {
		return DefaultSets
	}
	return e.Sets
}

// Validate checks the enum-typed fields of a catalog document.
func (e *Exercise) Validate() error {
	if e.Name == "" {
		return errors.New("exercise name is required")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("exercise %q: unknown category %q", e.Name, e.Category)
	}
	if !e.Level.Valid() {
		return fmt.Errorf("exercise %q: unknown level %q", e.Name, e.Level)
	}
	if e.Sets < 0 {
		return fmt.Errorf("exercise %q: sets cannot be negative", e.Name)
	}
	return nil
}
