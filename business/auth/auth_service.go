package auth

import (
	"context"
	"courseHub/domain"
)

// UserRepository contract interface
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// Identity is the proof of a passed authorization check: the caller's email
// as verified by the session token, plus the role loaded from the store.
type Identity struct {
	Email string
	Role  string
}

type Service struct {
	userRepo UserRepository
}

func NewService(userRepo UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// Authorize loads the user behind the session email and checks its role
// against the allowed set. Absent users and wrong roles both come back as
// ErrUnauthorized; the check has no side effects.
func (s *Service) Authorize(ctx context.Context, email string, roles ...string) (Identity, error) {
	if email == "" {
		return Identity{}, domain.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return Identity{}, domain.ErrUnauthorized
	}

	for _, role := range roles {
		if user.Role == role {
			return Identity{Email: user.Email, Role: user.Role}, nil
		}
	}

	return Identity{}, domain.ErrUnauthorized
}
