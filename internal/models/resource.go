package models

type Resource struct {
	ID      uint   `gorm:"primaryKey"`
	Caption string `gorm:"not null"`
	URL     string `gorm:"not null"`
	UserID  string `gorm:"not null;index"` // Foreign key to the User

	// Relationships
	User              User               `gorm:"foreignKey:UserID;references:Email;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ResourceExercises []ResourceExercise `gorm:"foreignKey:ResourceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
