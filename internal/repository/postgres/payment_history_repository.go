package postgres

import (
	"context"
	"courseHub/domain"
	"fmt"

	"gorm.io/gorm"
)

type PaymentHistoryRepository struct {
	DB *gorm.DB
}

func NewPaymentHistoryRepository(db *gorm.DB) *PaymentHistoryRepository {
	return &PaymentHistoryRepository{
		DB: db,
	}
}

// Create inserts the payment record together with its course item rows.
func (r *PaymentHistoryRepository) Create(ctx context.Context, history *domain.PaymentHistory) error {
	if err := r.DB.WithContext(ctx).Create(history).Error; err != nil {
		return fmt.Errorf("failed to create payment history: %w", err)
	}

	return nil
}

// PurchasedCoursesByEmail flattens one caller's payment records against the
// courses they bought: one row per purchased course.
func (r *PaymentHistoryRepository) PurchasedCoursesByEmail(ctx context.Context, email string) ([]domain.PurchasedCourse, error) {
	var rows []domain.PurchasedCourse

	err := r.DB.WithContext(ctx).
		Table("payment_history_items AS phi").
		Select("c.id AS course_id, c.title, ph.date, ph.transaction_id, ph.status, c.price").
		Joins("JOIN payment_histories ph ON ph.id = phi.payment_history_id").
		Joins("JOIN courses c ON c.id = phi.course_id").
		Where("ph.email = ?", email).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchased courses: %w", err)
	}

	return rows, nil
}

// AllPurchasedCourses is the admin variant of the same join, unfiltered.
func (r *PaymentHistoryRepository) AllPurchasedCourses(ctx context.Context) ([]domain.PurchasedCourse, error) {
	var rows []domain.PurchasedCourse

	err := r.DB.WithContext(ctx).
		Table("payment_history_items AS phi").
		Select("c.id AS course_id, c.title, ph.date, ph.transaction_id, ph.status, c.price").
		Joins("JOIN payment_histories ph ON ph.id = phi.payment_history_id").
		Joins("JOIN courses c ON c.id = phi.course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return rows, nil
}

type dailyRevenueRow struct {
	Day     string
	Revenue float64
}

// DailyRevenue groups payment records by calendar day, newest first, capped at
// limit buckets. The day is cast to text in SQL so it scans as YYYY-MM-DD on
// both postgres and sqlite.
func (r *PaymentHistoryRepository) DailyRevenue(ctx context.Context, limit int) ([]domain.DailyRevenue, error) {
	var rows []dailyRevenueRow

	err := r.DB.WithContext(ctx).
		Table("payment_histories").
		Select("CAST(DATE(date) AS TEXT) AS day, SUM(price) AS revenue").
		Group("DATE(date)").
		Order("day DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to roll up revenue: %w", err)
	}

	out := make([]domain.DailyRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DailyRevenue{
			Date:    row.Day,
			Revenue: row.Revenue,
		})
	}

	return out, nil
}
