package mysql

import (
	"context"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *productRepo) Search(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if f.Query != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+escapeLike(f.Query)+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	var out []domain.Product
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *productRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *productRepo) UpdateOwned(ctx context.Context, sellerID uuid.UUID, p *domain.Product) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ? AND seller_id = ?", p.ID, sellerID).
		Select("*").Omit("id", "seller_id", "created_at").
		Updates(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) DeleteOwned(ctx context.Context, sellerID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND seller_id = ?", id, sellerID).Delete(&domain.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) OwnersOf(ctx context.Context, sellerIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	owners := make(map[uuid.UUID]uuid.UUID)
	if len(sellerIDs) == 0 {
		return owners, nil
	}
	var rows []struct {
		ID       uuid.UUID
		SellerID uuid.UUID
	}
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Select("id", "seller_id").
		Where("seller_id IN ?", sellerIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		owners[row.ID] = row.SellerID
	}
	return owners, nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error
	return n, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using MySQL's
// default backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
