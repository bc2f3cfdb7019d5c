package mysql

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type factoryRepo struct {
	db *gorm.DB
}

func NewFactoryRepository(db *gorm.DB) repository.FactoryRepository {
	return &factoryRepo{db: db}
}

func (r *factoryRepo) Create(ctx context.Context, f *domain.Factory) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *factoryRepo) first(ctx context.Context, query string, args ...any) (*domain.Factory, error) {
	var f domain.Factory
	if err := r.db.WithContext(ctx).Where(query, args...).First(&f).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *factoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Factory, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *factoryRepo) FindBySellerAndName(ctx context.Context, sellerID uuid.UUID, name string) (*domain.Factory, error) {
	return r.first(ctx, "seller_id = ? AND name = ?", sellerID, name)
}

func (r *factoryRepo) ListAll(ctx context.Context) ([]domain.Factory, error) {
	var out []domain.Factory
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *factoryRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Factory, error) {
	var out []domain.Factory
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *factoryRepo) UpdateOwned(ctx context.Context, sellerID uuid.UUID, f *domain.Factory) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Factory{}).
		Where("id = ? AND seller_id = ?", f.ID, sellerID).
		Select("*").Omit("id", "seller_id", "created_at").
		Updates(f)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *factoryRepo) DeleteOwned(ctx context.Context, sellerID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND seller_id = ?", id, sellerID).Delete(&domain.Factory{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
