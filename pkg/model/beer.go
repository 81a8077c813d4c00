package model

import "gorm.io/gorm"

const (
	// MaxAssignedBeerNo is the highest slot number that counts as assigned.
	// Anything above it is a pool placeholder with no meaning beyond
	// "not yet placed".
	MaxAssignedBeerNo = 499

	// PoolPlaceholderBase is the lower bound for pool placeholder numbers.
	PoolPlaceholderBase = 500

	// PoolPlaceholderRange is the span of random placeholder numbers.
	PoolPlaceholderRange = 9500
)

type Beer struct {
	gorm.Model
	TastingID uint   `gorm:"uniqueIndex:idx_tasting_slot"`
	Name      string
	BeerNo    int `gorm:"uniqueIndex:idx_tasting_slot"`
}

// Assigned reports whether the beer holds a numbered tasting slot.
func (b Beer) Assigned() bool {
	return b.BeerNo >= 1 && b.BeerNo <= MaxAssignedBeerNo
}

// AvailableSlots returns the slot numbers in [1, totalBeers] not taken by any
// assigned beer, in ascending order.
func AvailableSlots(totalBeers int, assigned []Beer) []int {
	used := make(map[int]struct{}, len(assigned))

	for _, beer := range assigned {
		if beer.Assigned() {
			used[beer.BeerNo] = struct{}{}
		}
	}

	available := make([]int, 0, totalBeers)

	for slot := 1; slot <= totalBeers; slot++ {
		if _, taken := used[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}
