package postgres

import (
	"context"
	"courseHub/domain"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// summaryColumns is the projection used by every public listing. The full
// description stays out of list responses.
const summaryColumns = "id, title, image, level, rating, duration, lectures"

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		DB: db,
	}
}

// CourseFilter is shared between Search and Count so the two can never drift.
type CourseFilter struct {
	Category string
	Search   string
}

func applyCourseFilter(db *gorm.DB, filter CourseFilter) *gorm.DB {
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	return db
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	if err := r.DB.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint) (domain.Course, error) {
	var course domain.Course

	err := r.DB.WithContext(ctx).First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Course{}, domain.ErrNotFound
		}
		return domain.Course{}, fmt.Errorf("failed to find course: %w", err)
	}

	return course, nil
}

func (r *CourseRepository) FindTitleByID(ctx context.Context, id uint) (string, error) {
	var course domain.Course

	err := r.DB.WithContext(ctx).Select("title").First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to find course title: %w", err)
	}

	return course.Title, nil
}

// FindSummariesByCategory lists projected course rows for one category.
// limit <= 0 means unlimited.
func (r *CourseRepository) FindSummariesByCategory(ctx context.Context, category string, limit int) ([]domain.CourseSummary, error) {
	var summaries []domain.CourseSummary

	db := r.DB.WithContext(ctx).Model(&domain.Course{}).
		Select(summaryColumns).
		Where("category = ?", category)
	if limit > 0 {
		db = db.Limit(limit)
	}

	if err := db.Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to find courses by category: %w", err)
	}

	return summaries, nil
}

// FindTrending ranks courses by review count. Ties are left to storage order.
func (r *CourseRepository) FindTrending(ctx context.Context, limit int) ([]domain.TrendingCourse, error) {
	var courses []domain.TrendingCourse

	err := r.DB.WithContext(ctx).
		Model(&domain.Course{}).
		Select("id, image, title, rating, total_review_number, enrolled, level, price, category, lectures, duration, name, user_img").
		Order("total_review_number desc").
		Limit(limit).
		Scan(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trending courses: %w", err)
	}

	return courses, nil
}

func (r *CourseRepository) Search(ctx context.Context, filter CourseFilter, page, size int) ([]domain.CourseSummary, error) {
	var summaries []domain.CourseSummary

	db := applyCourseFilter(r.DB.WithContext(ctx).Model(&domain.Course{}), filter)

	err := db.Select(summaryColumns).
		Offset(page * size).
		Limit(size).
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}

	return summaries, nil
}

func (r *CourseRepository) Count(ctx context.Context, filter CourseFilter) (int64, error) {
	var count int64

	db := applyCourseFilter(r.DB.WithContext(ctx).Model(&domain.Course{}), filter)

	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}

	return count, nil
}

func (r *CourseRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&domain.Course{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}

	return count, nil
}

// AdminList returns full course rows for the admin catalog table, with an
// optional title search and newest/oldest ordering on last_updated.
func (r *CourseRepository) AdminList(ctx context.Context, search, sort string, page, size int) ([]domain.Course, error) {
	var courses []domain.Course

	db := r.DB.WithContext(ctx).Model(&domain.Course{})
	if search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	switch sort {
	case "newest":
		db = db.Order("last_updated desc")
	case "oldest":
		db = db.Order("last_updated asc")
	}

	if err := db.Offset(page * size).Limit(size).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, nil
}

// Upsert updates the course with the given id, inserting it when no such row
// exists. Mirrors the update endpoint's upsert contract.
func (r *CourseRepository) Upsert(ctx context.Context, id uint, course *domain.Course) error {
	course.ID = id

	result := r.DB.WithContext(ctx).Model(&domain.Course{}).Where("id = ?", id).Updates(course)
	if result.Error != nil {
		return fmt.Errorf("failed to update course: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		if err := r.DB.WithContext(ctx).Create(course).Error; err != nil {
			return fmt.Errorf("failed to upsert course: %w", err)
		}
	}

	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.Course{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete course: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
