package domain

import "time"

// Wishlist exists in the schema but has no routes yet.
type Wishlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"column:email;index;not null" json:"email"`
	CourseID  uint      `gorm:"column:course_id;not null" json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
