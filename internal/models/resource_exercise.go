package models

type ResourceExercise struct {
	ExerciseID uint `gorm:"not null;primaryKey"`
	ResourceID uint `gorm:"not null;primaryKey"`

	// Relationships
	Exercise Exercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Resource Resource `gorm:"foreignKey:ResourceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
