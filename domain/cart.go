package domain

import "time"

// CartItem snapshots the course at add-time so the cart view does not need a
// join. Uniqueness per item is checked in the service, not by a constraint.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    uint      `gorm:"column:item_id;index;not null" json:"itemId"`
	Email     string    `gorm:"column:email;index;not null" json:"email"`
	Title     string    `gorm:"column:title" json:"title,omitempty"`
	Image     string    `gorm:"column:image" json:"image,omitempty"`
	Price     float64   `gorm:"column:price;type:numeric" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CartItem) TableName() string {
	return "carts"
}
