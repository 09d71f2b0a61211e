package catalog

import (
	"context"
	"courseHub/domain"
	"courseHub/internal/repository/postgres"
	"courseHub/pkg/logger"
	"time"
)

const (
	popularLimit  = 8
	trendingLimit = 3
)

// CourseRepository contract interface
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	FindByID(ctx context.Context, id uint) (domain.Course, error)
	FindTitleByID(ctx context.Context, id uint) (string, error)
	FindSummariesByCategory(ctx context.Context, category string, limit int) ([]domain.CourseSummary, error)
	FindTrending(ctx context.Context, limit int) ([]domain.TrendingCourse, error)
	Search(ctx context.Context, filter postgres.CourseFilter, page, size int) ([]domain.CourseSummary, error)
	Count(ctx context.Context, filter postgres.CourseFilter) (int64, error)
	AdminList(ctx context.Context, search, sort string, page, size int) ([]domain.Course, error)
	Upsert(ctx context.Context, id uint, course *domain.Course) error
	Delete(ctx context.Context, id uint) error
}

// TrendingCache is optional; a nil cache disables it.
type TrendingCache interface {
	Get(ctx context.Context) ([]domain.TrendingCourse, error)
	Set(ctx context.Context, courses []domain.TrendingCourse) error
}

type Service struct {
	courseRepo CourseRepository
	cache      TrendingCache
}

func NewService(courseRepo CourseRepository, cache TrendingCache) *Service {
	return &Service{
		courseRepo: courseRepo,
		cache:      cache,
	}
}

// PopularByCategory returns up to eight projected courses for a category.
func (s *Service) PopularByCategory(ctx context.Context, category string) ([]domain.CourseSummary, error) {
	return s.courseRepo.FindSummariesByCategory(ctx, category, popularLimit)
}

// CoursesByCategory returns the full (still projected) category listing.
func (s *Service) CoursesByCategory(ctx context.Context, category string) ([]domain.CourseSummary, error) {
	return s.courseRepo.FindSummariesByCategory(ctx, category, 0)
}

// Trending ranks the top three courses by review count, read through the
// cache when one is wired. Cache trouble only ever costs a DB round trip.
func (s *Service) Trending(ctx context.Context) ([]domain.TrendingCourse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil {
			return cached, nil
		}
	}

	courses, err := s.courseRepo.FindTrending(ctx, trendingLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, courses); err != nil {
			logger.Warn("Failed to cache trending courses", err)
		}
	}

	return courses, nil
}

func (s *Service) Search(ctx context.Context, filter postgres.CourseFilter, page, size int) ([]domain.CourseSummary, error) {
	return s.courseRepo.Search(ctx, filter, page, size)
}

// CountCourses shares its filter with Search, so the two stay consistent for
// any category/search combination.
func (s *Service) CountCourses(ctx context.Context, filter postgres.CourseFilter) (int64, error) {
	return s.courseRepo.Count(ctx, filter)
}

func (s *Service) GetCourse(ctx context.Context, id uint) (domain.Course, error) {
	return s.courseRepo.FindByID(ctx, id)
}

func (s *Service) GetCourseTitle(ctx context.Context, id uint) (string, error) {
	return s.courseRepo.FindTitleByID(ctx, id)
}

func (s *Service) AddCourse(ctx context.Context, course *domain.Course) error {
	if course.LastUpdated.IsZero() {
		course.LastUpdated = time.Now()
	}

	return s.courseRepo.Create(ctx, course)
}

func (s *Service) AdminListCourses(ctx context.Context, search, sort string, page, size int) ([]domain.Course, error) {
	return s.courseRepo.AdminList(ctx, search, sort, page, size)
}

func (s *Service) AdminCountCourses(ctx context.Context, search string) (int64, error) {
	return s.courseRepo.Count(ctx, postgres.CourseFilter{Search: search})
}

// UpdateCourse has upsert semantics: an unknown id inserts rather than fails.
func (s *Service) UpdateCourse(ctx context.Context, id uint, course *domain.Course) error {
	if course.LastUpdated.IsZero() {
		course.LastUpdated = time.Now()
	}

	return s.courseRepo.Upsert(ctx, id, course)
}

func (s *Service) DeleteCourse(ctx context.Context, id uint) error {
	return s.courseRepo.Delete(ctx, id)
}
