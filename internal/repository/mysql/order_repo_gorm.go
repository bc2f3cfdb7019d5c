package mysql

import (
	"context"
	"errors"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Save inserts the order and its items in one transaction.
func (r *orderRepo) Save(ctx context.Context, o *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	if err != nil {
		log.WithError(err).Error("order save failed")
		return err
	}
	if o.ID == uuid.Nil {
		return errors.New("failed to assign order ID")
	}
	log.WithFields(log.Fields{"order_id": o.ID, "items": len(o.Items)}).Info("order saved")
	return nil
}

func (r *orderRepo) FindForCustomer(ctx context.Context, customerID, id uuid.UUID) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&o).Error
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&n).Error
	return n, err
}

func (r *orderRepo) EachBatch(ctx context.Context, batchSize int, fn func([]domain.Order) error) error {
	var batch []domain.Order
	res := r.db.WithContext(ctx).Preload("Items").
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		})
	return res.Error
}
