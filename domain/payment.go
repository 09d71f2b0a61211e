package domain

import "time"

// PaymentHistory is append-only: one row per checkout transaction, with the
// purchased course ids as child rows.
type PaymentHistory struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	Email         string               `gorm:"column:email;index;not null" json:"email"`
	TransactionID string               `gorm:"column:transaction_id;index" json:"transactionId"`
	Date          time.Time            `gorm:"column:date" json:"date"`
	Price         float64              `gorm:"column:price;type:numeric" json:"price"`
	Status        string               `gorm:"column:status" json:"status"`
	Items         []PaymentHistoryItem `gorm:"foreignKey:PaymentHistoryID" json:"-"`
}

func (PaymentHistory) TableName() string {
	return "payment_histories"
}

type PaymentHistoryItem struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	PaymentHistoryID uint `gorm:"column:payment_history_id;index;not null" json:"paymentHistoryId"`
	CourseID         uint `gorm:"column:course_id;not null" json:"courseId"`
}

func (PaymentHistoryItem) TableName() string {
	return "payment_history_items"
}

// PurchasedCourse is one output row of the payment-history join: a purchase
// record flattened against the course it bought.
type PurchasedCourse struct {
	CourseID      uint      `json:"id"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	Price         float64   `json:"price"`
}

// DailyRevenue is one bucket of the admin revenue rollup.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}
