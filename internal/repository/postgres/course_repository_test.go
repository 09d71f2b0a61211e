package postgres

import (
	"context"
	"courseHub/domain"
	"courseHub/pkg/database"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// A pooled :memory: connection is a fresh empty database; keep one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedCourses(t *testing.T, db *gorm.DB) {
	t.Helper()

	courses := []domain.Course{
		{Title: "Go Fundamentals", Category: "programming", Level: "beginner", Price: 19.99, TotalReviewNumber: 120, LastUpdated: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Advanced Go Patterns", Category: "programming", Level: "advanced", Price: 49.99, TotalReviewNumber: 340, LastUpdated: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Watercolor Basics", Category: "art", Level: "beginner", Price: 9.99, TotalReviewNumber: 80, LastUpdated: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Figure Drawing", Category: "art", Level: "intermediate", Price: 24.99, TotalReviewNumber: 510, LastUpdated: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Music Theory", Category: "music", Level: "beginner", Price: 14.99, TotalReviewNumber: 200, LastUpdated: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	if err := db.Create(&courses).Error; err != nil {
		t.Fatalf("failed to seed courses: %v", err)
	}
}

func TestSearchAndCountShareFilter(t *testing.T) {
	db := setupTestDB(t)
	seedCourses(t, db)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	filters := []CourseFilter{
		{},
		{Category: "programming"},
		{Search: "go"},
		{Category: "art", Search: "figure"},
		{Search: "no-such-course"},
	}

	for _, filter := range filters {
		results, err := repo.Search(ctx, filter, 0, 100)
		if err != nil {
			t.Fatalf("Search(%+v) returned error: %v", filter, err)
		}

		count, err := repo.Count(ctx, filter)
		if err != nil {
			t.Fatalf("Count(%+v) returned error: %v", filter, err)
		}

		if count != int64(len(results)) {
			t.Errorf("filter %+v: count %d does not match %d search results", filter, count, len(results))
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedCourses(t, db)
	repo := NewCourseRepository(db)

	results, err := repo.Search(context.Background(), CourseFilter{Search: "GO"}, 0, 100)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if len(results) != 2 {
		t.Errorf("expected 2 matches for %q, got %d", "GO", len(results))
	}
}

func TestFindTrendingOrdersByReviewCount(t *testing.T) {
	db := setupTestDB(t)
	seedCourses(t, db)
	repo := NewCourseRepository(db)

	trending, err := repo.FindTrending(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindTrending returned error: %v", err)
	}

	if len(trending) != 3 {
		t.Fatalf("expected 3 trending courses, got %d", len(trending))
	}

	for i := 1; i < len(trending); i++ {
		if trending[i].TotalReviewNumber > trending[i-1].TotalReviewNumber {
			t.Errorf("trending not sorted: %d before %d",
				trending[i-1].TotalReviewNumber, trending[i].TotalReviewNumber)
		}
	}

	if trending[0].Title != "Figure Drawing" {
		t.Errorf("expected most reviewed course first, got %q", trending[0].Title)
	}
}

func TestFindTrendingProjection(t *testing.T) {
	db := setupTestDB(t)
	seedCourses(t, db)
	repo := NewCourseRepository(db)

	trending, err := repo.FindTrending(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindTrending returned error: %v", err)
	}
	if len(trending) != 1 {
		t.Fatalf("expected 1 course, got %d", len(trending))
	}

	payload, err := json.Marshal(trending[0])
	if err != nil {
		t.Fatalf("failed to marshal trending course: %v", err)
	}

	// The card payload never carries the description or the update timestamp.
	for _, key := range []string{"lastUpdated", "courseDescription"} {
		if strings.Contains(string(payload), key) {
			t.Errorf("trending payload leaks %q: %s", key, payload)
		}
	}
}

func TestFindSummariesByCategoryLimit(t *testing.T) {
	db := setupTestDB(t)
	seedCourses(t, db)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	limited, err := repo.FindSummariesByCategory(ctx, "art", 1)
	if err != nil {
		t.Fatalf("FindSummariesByCategory returned error: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected limit to cap at 1, got %d", len(limited))
	}

	all, err := repo.FindSummariesByCategory(ctx, "art", 0)
	if err != nil {
		t.Fatalf("FindSummariesByCategory returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 art courses unlimited, got %d", len(all))
	}
}

func TestUpsertInsertsUnknownID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	course := domain.Course{Title: "Brand New", Category: "music", Price: 5, LastUpdated: time.Now()}
	if err := repo.Upsert(ctx, 99, &course); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	stored, err := repo.FindByID(ctx, 99)
	if err != nil {
		t.Fatalf("FindByID after upsert returned error: %v", err)
	}
	if stored.Title != "Brand New" {
		t.Errorf("expected inserted course, got %q", stored.Title)
	}
}

func TestUpsertUpdatesExisting(t *testing.T) {
	db := setupTestDB(t)
	seedCourses(t, db)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	update := domain.Course{Title: "Go Fundamentals v2", Price: 29.99, LastUpdated: time.Now()}
	if err := repo.Upsert(ctx, 1, &update); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	stored, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.Title != "Go Fundamentals v2" {
		t.Errorf("expected updated title, got %q", stored.Title)
	}

	count, _ := repo.CountAll(ctx)
	if count != 5 {
		t.Errorf("update should not add rows, count is %d", count)
	}
}

func TestDeleteUnknownCourse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	err := repo.Delete(context.Background(), 12345)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindTitleByID(t *testing.T) {
	db := setupTestDB(t)
	seedCourses(t, db)
	repo := NewCourseRepository(db)

	title, err := repo.FindTitleByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindTitleByID returned error: %v", err)
	}
	if title != "Watercolor Basics" {
		t.Errorf("expected %q, got %q", "Watercolor Basics", title)
	}
}
