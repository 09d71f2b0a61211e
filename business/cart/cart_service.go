package cart

import (
	"context"
	"courseHub/domain"
	"errors"
)

// CartRepository contract interface
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	FindByItemID(ctx context.Context, itemID uint) (domain.CartItem, error)
	FindByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type Service struct {
	cartRepo CartRepository
}

func NewService(cartRepo CartRepository) *Service {
	return &Service{
		cartRepo: cartRepo,
	}
}

// Add inserts a cart item unless the same course is already carted. The
// duplicate check is application-level, not a DB constraint; the duplicate
// case returns a nil inserted id and no error.
func (s *Service) Add(ctx context.Context, item *domain.CartItem) (*uint, error) {
	existing, err := s.cartRepo.FindByItemID(ctx, item.ItemID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if existing.ID > 0 {
		return nil, nil
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return &item.ID, nil
}

func (s *Service) List(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.cartRepo.FindByEmail(ctx, email)
}

func (s *Service) Count(ctx context.Context, email string) (int64, error) {
	return s.cartRepo.CountByEmail(ctx, email)
}

func (s *Service) Remove(ctx context.Context, id uint) error {
	return s.cartRepo.Delete(ctx, id)
}
