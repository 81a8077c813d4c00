package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an organizer account. Participants never get a row; they are
// identified by anonymous tokens only.
type User struct {
	gorm.Model
	UUID         uuid.UUID `gorm:"type:uuid"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
}
