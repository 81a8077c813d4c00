package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sub-score upper bounds. The four criteria are weighted by their ranges;
// taste dominates at half the total.
const (
	MaxSmak      = 50
	MaxEttersmak = 20
	MaxFarge     = 20
	MaxLukt      = 10
)

var ErrScoreOutOfRange = errors.New("score out of range")

type Rating struct {
	gorm.Model
	TastingID   uint   `gorm:"uniqueIndex:idx_rating_unique"`
	BeerNo      int    `gorm:"uniqueIndex:idx_rating_unique"`
	UserID      string `gorm:"uniqueIndex:idx_rating_unique;size:36"`
	DisplayName string
	Smak        int
	Ettersmak   int
	Farge       int
	Lukt        int
	Score       int
}

// Validate checks every sub-score against its declared bound.
func (r Rating) Validate() error {
	bounds := []struct {
		name  string
		value int
		max   int
	}{
		{"smak", r.Smak, MaxSmak},
		{"ettersmak", r.Ettersmak, MaxEttersmak},
		{"farge", r.Farge, MaxFarge},
		{"lukt", r.Lukt, MaxLukt},
	}

	for _, bound := range bounds {
		if bound.value < 0 || bound.value > bound.max {
			return fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrScoreOutOfRange, bound.name, bound.max, bound.value)
		}
	}

	return nil
}

// ComputeScore returns the total score. The total is always derived from the
// sub-scores, never taken from the client.
func (r Rating) ComputeScore() int {
	return r.Smak + r.Ettersmak + r.Farge + r.Lukt
}
