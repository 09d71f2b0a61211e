package postgres

import (
	"context"
	"courseHub/domain"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type EnrolledStudentRepository struct {
	DB *gorm.DB
}

func NewEnrolledStudentRepository(db *gorm.DB) *EnrolledStudentRepository {
	return &EnrolledStudentRepository{
		DB: db,
	}
}

func (r *EnrolledStudentRepository) Create(ctx context.Context, student *domain.EnrolledStudent) error {
	if err := r.DB.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create enrolled student: %w", err)
	}

	return nil
}

func (r *EnrolledStudentRepository) FindByEmail(ctx context.Context, email string) (domain.EnrolledStudent, error) {
	var student domain.EnrolledStudent

	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EnrolledStudent{}, domain.ErrNotFound
		}
		return domain.EnrolledStudent{}, fmt.Errorf("failed to find enrolled student: %w", err)
	}

	return student, nil
}

func (r *EnrolledStudentRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.DB.WithContext(ctx).Where("email = ?", email).Delete(&domain.EnrolledStudent{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete enrolled student: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *EnrolledStudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&domain.EnrolledStudent{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count enrolled students: %w", err)
	}

	return count, nil
}
