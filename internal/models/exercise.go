package models

type Exercise struct {
	ID       uint   `gorm:"primaryKey"`
	Question string `gorm:"not null"`
	Answer   string `gorm:"not null"`
	UserID   string `gorm:"not null;index"` // Foreign key to the User

	// Relationships
	User              User               `gorm:"foreignKey:UserID;references:Email;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Attempts          []Attempt          `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ResourceExercises []ResourceExercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
