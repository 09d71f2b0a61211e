package postgres

import (
	"context"
	"courseHub/domain"
	"fmt"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		DB: db,
	}
}

func (r *EnrollmentRepository) CreateBatch(ctx context.Context, enrollments []domain.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&enrollments).Error; err != nil {
		return fmt.Errorf("failed to create enrollments: %w", err)
	}

	return nil
}

func (r *EnrollmentRepository) FindByEmail(ctx context.Context, email string) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment

	err := r.DB.WithContext(ctx).Where("user_email = ?", email).Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find enrollments: %w", err)
	}

	return enrollments, nil
}

// FindCoursesByEmail joins a student's enrollments against the catalog and
// returns dashboard summaries.
func (r *EnrollmentRepository) FindCoursesByEmail(ctx context.Context, email string) ([]domain.EnrolledCourse, error) {
	var rows []domain.EnrolledCourse

	err := r.DB.WithContext(ctx).
		Table("enrollments AS e").
		Select("c.id, c.title, c.image, c.lectures").
		Joins("JOIN courses c ON c.id = e.course_id").
		Where("e.user_email = ?", email).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find enrolled courses: %w", err)
	}

	return rows, nil
}

func (r *EnrollmentRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Enrollment{}).Where("user_email = ?", email).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}

	return count, nil
}

func (r *EnrollmentRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.DB.WithContext(ctx).Where("user_email = ?", email).Delete(&domain.Enrollment{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete enrollments: %w", result.Error)
	}

	return result.RowsAffected, nil
}
