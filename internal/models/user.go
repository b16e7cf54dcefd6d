package models

type User struct {
	Email       string `gorm:"primaryKey"`
	DisplayName string `gorm:"not null"`

	// Relationships
	Exercises []Exercise `gorm:"foreignKey:UserID;references:Email;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Resources []Resource `gorm:"foreignKey:UserID;references:Email;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
