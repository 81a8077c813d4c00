package model

import "gorm.io/gorm"

// JoinCodeLength is the length of the code participants type to join a tasting.
const JoinCodeLength = 4

type Tasting struct {
	gorm.Model
	Title         string
	JoinCode      string `gorm:"uniqueIndex;size:4"`
	TotalBeers    int
	CurrentBeerNo int `gorm:"default:1"`
	Revealed      bool
	CreatedByID   uint

	CreatedBy User `gorm:"foreignKey:CreatedByID"`
}

// ClampBeerNo applies a round change to the active beer slot. The result is
// kept inside [1, totalBeers] so an organizer cannot step before the first
// beer or past the roster.
func ClampBeerNo(current, delta, totalBeers int) int {
	next := current + delta
	if next < 1 {
		next = 1
	}

	if totalBeers > 0 && next > totalBeers {
		next = totalBeers
	}

	return next
}
