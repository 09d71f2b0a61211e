package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is created on first sign-in; identity comes from the frontend's
// identity provider, so there is no password here.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name,omitempty"`
	Email     string    `gorm:"column:email;unique;not null" json:"email"`
	Photo     string    `gorm:"column:photo" json:"photo,omitempty"`
	Role      string    `gorm:"column:role;default:student" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
