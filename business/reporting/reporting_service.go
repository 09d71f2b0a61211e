package reporting

import (
	"context"
	"courseHub/domain"
)

const revenueBuckets = 7

type PaymentHistoryRepository interface {
	PurchasedCoursesByEmail(ctx context.Context, email string) ([]domain.PurchasedCourse, error)
	AllPurchasedCourses(ctx context.Context) ([]domain.PurchasedCourse, error)
	DailyRevenue(ctx context.Context, limit int) ([]domain.DailyRevenue, error)
}

type EnrollmentRepository interface {
	FindCoursesByEmail(ctx context.Context, email string) ([]domain.EnrolledCourse, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type UserRepository interface {
	CountAll(ctx context.Context) (int64, error)
}

type CourseRepository interface {
	CountAll(ctx context.Context) (int64, error)
}

type EnrolledStudentRepository interface {
	CountAll(ctx context.Context) (int64, error)
}

type Service struct {
	paymentHistoryRepo  PaymentHistoryRepository
	enrollmentRepo      EnrollmentRepository
	userRepo            UserRepository
	courseRepo          CourseRepository
	enrolledStudentRepo EnrolledStudentRepository
}

func NewService(
	paymentHistoryRepo PaymentHistoryRepository,
	enrollmentRepo EnrollmentRepository,
	userRepo UserRepository,
	courseRepo CourseRepository,
	enrolledStudentRepo EnrolledStudentRepository,
) *Service {
	return &Service{
		paymentHistoryRepo:  paymentHistoryRepo,
		enrollmentRepo:      enrollmentRepo,
		userRepo:            userRepo,
		courseRepo:          courseRepo,
		enrolledStudentRepo: enrolledStudentRepo,
	}
}

// StudentPaymentHistory returns one row per course the student has paid for.
func (s *Service) StudentPaymentHistory(ctx context.Context, email string) ([]domain.PurchasedCourse, error) {
	rows, err := s.paymentHistoryRepo.PurchasedCoursesByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []domain.PurchasedCourse{}
	}

	return rows, nil
}

// AdminOrders is the unfiltered variant across every payment record.
func (s *Service) AdminOrders(ctx context.Context) ([]domain.PurchasedCourse, error) {
	rows, err := s.paymentHistoryRepo.AllPurchasedCourses(ctx)
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []domain.PurchasedCourse{}
	}

	return rows, nil
}

// StudentEnrollments lists the courses a student is enrolled in. An empty
// result is an empty list, not a message payload.
func (s *Service) StudentEnrollments(ctx context.Context, email string) ([]domain.EnrolledCourse, error) {
	rows, err := s.enrollmentRepo.FindCoursesByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []domain.EnrolledCourse{}
	}

	return rows, nil
}

func (s *Service) StudentStatistic(ctx context.Context, email string) (int64, error) {
	return s.enrollmentRepo.CountByEmail(ctx, email)
}

type AdminStatistics struct {
	TotalStudents int64                 `json:"totalStudents"`
	TotalCourses  int64                 `json:"totalCourses"`
	EnrolledUser  int64                 `json:"enrolledUser"`
	RevenueData   []domain.DailyRevenue `json:"revenueData"`
}

// AdminDashboard aggregates the dashboard counts plus the seven-day revenue
// rollup.
func (s *Service) AdminDashboard(ctx context.Context) (AdminStatistics, error) {
	totalStudents, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return AdminStatistics{}, err
	}

	totalCourses, err := s.courseRepo.CountAll(ctx)
	if err != nil {
		return AdminStatistics{}, err
	}

	enrolledUser, err := s.enrolledStudentRepo.CountAll(ctx)
	if err != nil {
		return AdminStatistics{}, err
	}

	revenue, err := s.paymentHistoryRepo.DailyRevenue(ctx, revenueBuckets)
	if err != nil {
		return AdminStatistics{}, err
	}

	if revenue == nil {
		revenue = []domain.DailyRevenue{}
	}

	return AdminStatistics{
		TotalStudents: totalStudents,
		TotalCourses:  totalCourses,
		EnrolledUser:  enrolledUser,
		RevenueData:   revenue,
	}, nil
}
