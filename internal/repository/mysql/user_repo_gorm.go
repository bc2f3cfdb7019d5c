package mysql

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	q := r.db.WithContext(ctx)
	// Only sellers carry a vendor state; the column stays NULL otherwise.
	if !u.IsSeller() {
		q = q.Omit("VendorStatus")
	}
	if err := q.Create(u).Error; err != nil {
		return classify(err)
	}
	log.WithFields(log.Fields{"user_id": u.ID, "role": u.Role}).Debug("user created")
	return nil
}

func (r *userRepo) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", domain.NormalizeEmail(email))
}

func (r *userRepo) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

func (r *userRepo) FindAdmin(ctx context.Context) (*domain.User, error) {
	return r.findOne(ctx, "role = ?", domain.RoleAdmin)
}

func (r *userRepo) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	slot := uint8(1)
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"role":          domain.RoleAdmin,
		"admin_slot":    slot,
		"vendor_status": gorm.Expr("NULL"),
	}).Error
	return classify(err)
}

func (r *userRepo) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) error {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Email != nil {
		fields["email"] = domain.NormalizeEmail(*upd.Email)
	}
	if upd.Phone != nil {
		fields["phone"] = *upd.Phone
	}
	if upd.Address != nil {
		fields["address"] = *upd.Address
	}
	if upd.City != nil {
		fields["city"] = *upd.City
	}
	if upd.Logo != nil {
		fields["logo"] = *upd.Logo
	}
	if upd.ShippingMethod != nil {
		fields["shipping_method"] = *upd.ShippingMethod
	}
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error
	return classify(err)
}

func (r *userRepo) TransitionVendor(ctx context.Context, id uuid.UUID, from, to domain.VendorStatus) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ? AND role = ?", id, domain.RoleSeller)
	if from == domain.VendorPending {
		q = q.Where("(vendor_status = ? OR vendor_status IS NULL)", from.String())
	} else {
		q = q.Where("vendor_status = ?", from.String())
	}
	res := q.Update("vendor_status", to.String())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *userRepo) ListSellers(ctx context.Context, status *domain.VendorStatus) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Where("role = ?", domain.RoleSeller)
	if status != nil {
		if *status == domain.VendorPending {
			q = q.Where("(vendor_status = ? OR vendor_status IS NULL)", status.String())
		} else {
			q = q.Where("vendor_status = ?", status.String())
		}
	}
	var out []domain.User
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}
