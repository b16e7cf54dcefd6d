package models

import (
	"time"
)

type Attempt struct {
	ID            uint      `gorm:"primaryKey"`
	ExerciseID    uint      `gorm:"not null;index"`
	Score         int       `gorm:"not null"`
	WhenAttempted time.Time `gorm:"not null"`

	// Relationships
	Exercise Exercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
