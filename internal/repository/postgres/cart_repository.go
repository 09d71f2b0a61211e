package postgres

import (
	"context"
	"courseHub/domain"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

func (r *CartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}

	return nil
}

func (r *CartRepository) FindByItemID(ctx context.Context, itemID uint) (domain.CartItem, error) {
	var item domain.CartItem

	err := r.DB.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartItem{}, domain.ErrNotFound
		}
		return domain.CartItem{}, fmt.Errorf("failed to find cart item: %w", err)
	}

	return item, nil
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	var items []domain.CartItem

	if err := r.DB.WithContext(ctx).Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}

	return items, nil
}

func (r *CartRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.CartItem{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count cart items: %w", err)
	}

	return count, nil
}

func (r *CartRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.CartItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// DeleteByIDs purges the given cart rows after checkout. Best-effort: ids that
// no longer exist are simply skipped.
func (r *CartRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Delete(&domain.CartItem{}, ids).Error; err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}

	return nil
}
