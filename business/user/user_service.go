package user

import (
	"context"
	"courseHub/domain"
	"courseHub/pkg/logger"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAllByRole(ctx context.Context) ([]domain.User, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type EnrollmentRepository interface {
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type EnrolledStudentRepository interface {
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type Service struct {
	userRepo            UserRepository
	enrollmentRepo      EnrollmentRepository
	enrolledStudentRepo EnrolledStudentRepository
}

func NewService(
	userRepo UserRepository,
	enrollmentRepo EnrollmentRepository,
	enrolledStudentRepo EnrolledStudentRepository,
) *Service {
	return &Service{
		userRepo:            userRepo,
		enrollmentRepo:      enrollmentRepo,
		enrolledStudentRepo: enrolledStudentRepo,
	}
}

// SaveUser creates the user on first sign-in. A second call with the same
// email is a no-op and returns a nil inserted id.
func (s *Service) SaveUser(ctx context.Context, user *domain.User) (*uint, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existing.ID > 0 {
		return nil, nil
	}

	if user.Role == "" {
		user.Role = domain.RoleStudent
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error("Failed to create user", err)
		return nil, err
	}

	return &user.ID, nil
}

func (s *Service) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindAllByRole(ctx)
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// RemovalResult reports how many rows each of the three deletes touched.
type RemovalResult struct {
	RemovedEnrolledStudents int64 `json:"removedEnrolledStudents"`
	RemovedEnrollments      int64 `json:"removedEnrollments"`
	RemovedUsers            int64 `json:"removedUsers"`
}

// RemoveStudent cascades over enrolled_students, enrollments and users as
// three independent deletes. They are intentionally not wrapped in a
// transaction; a failure midway leaves the earlier deletes committed.
func (s *Service) RemoveStudent(ctx context.Context, email string) (RemovalResult, error) {
	var result RemovalResult

	removed, err := s.enrolledStudentRepo.DeleteByEmail(ctx, email)
	if err != nil {
		return result, err
	}
	result.RemovedEnrolledStudents = removed

	removed, err = s.enrollmentRepo.DeleteByEmail(ctx, email)
	if err != nil {
		return result, err
	}
	result.RemovedEnrollments = removed

	removed, err = s.userRepo.DeleteByEmail(ctx, email)
	if err != nil {
		return result, err
	}
	result.RemovedUsers = removed

	return result, nil
}
