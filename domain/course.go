package domain

import "time"

type Course struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"column:title;not null" json:"title"`
	Category          string    `gorm:"column:category;index" json:"category,omitempty"`
	Level             string    `gorm:"column:level" json:"level,omitempty"`
	Price             float64   `gorm:"column:price;type:numeric" json:"price,omitempty"`
	Rating            float64   `gorm:"column:rating;type:numeric" json:"rating,omitempty"`
	TotalReviewNumber int       `gorm:"column:total_review_number;default:0" json:"totalReviewNumber,omitempty"`
	Lectures          int       `gorm:"column:lectures" json:"lectures,omitempty"`
	Duration          string    `gorm:"column:duration" json:"duration,omitempty"`
	Enrolled          int       `gorm:"column:enrolled;default:0" json:"enrolled,omitempty"`
	Image             string    `gorm:"column:image" json:"image,omitempty"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"courseDescription,omitempty"`
	Name              string    `gorm:"column:name" json:"name,omitempty"`
	UserImg           string    `gorm:"column:user_img" json:"userImg,omitempty"`
	LastUpdated       time.Time `gorm:"column:last_updated" json:"lastUpdated"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseSummary is the projected shape used by the public catalog listings.
// The full description never leaves the single-course endpoint.
type CourseSummary struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Image    string  `json:"image"`
	Level    string  `json:"level,omitempty"`
	Rating   float64 `json:"rating"`
	Duration string  `json:"duration,omitempty"`
	Lectures int     `json:"lectures"`
}

// TrendingCourse is the projection behind the trending ranking: everything the
// card needs, without the description or the update timestamp.
type TrendingCourse struct {
	ID                uint    `json:"id"`
	Image             string  `json:"image"`
	Title             string  `json:"title"`
	Rating            float64 `json:"rating"`
	TotalReviewNumber int     `json:"totalReviewNumber"`
	Enrolled          int     `json:"enrolled"`
	Level             string  `json:"level,omitempty"`
	Price             float64 `json:"price"`
	Category          string  `json:"category,omitempty"`
	Lectures          int     `json:"lectures"`
	Duration          string  `json:"duration,omitempty"`
	Name              string  `json:"name,omitempty"`
	UserImg           string  `json:"userImg,omitempty"`
}
