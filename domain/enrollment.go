package domain

import "time"

const EnrollmentStatusActive = "active"

// Enrollment is created once per course per checkout and read-only afterward.
type Enrollment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserEmail     string    `gorm:"column:user_email;index;not null" json:"userEmail"`
	CourseID      uint      `gorm:"column:course_id;index;not null" json:"courseId"`
	TransactionID string    `gorm:"column:transaction_id;index" json:"transactionId"`
	PurchaseDate  time.Time `gorm:"column:purchase_date" json:"purchaseDate"`
	Status        string    `gorm:"column:status" json:"status"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// EnrolledStudent marks a user's first-ever purchase. At most one per email.
type EnrolledStudent struct {
	ID    uint      `gorm:"primaryKey" json:"id"`
	Email string    `gorm:"column:email;unique;not null" json:"email"`
	Date  time.Time `gorm:"column:date" json:"date"`
}

func (EnrolledStudent) TableName() string {
	return "enrolled_students"
}

// EnrolledCourse is the summary a student sees on their dashboard.
type EnrolledCourse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Lectures int    `json:"lectures"`
}
