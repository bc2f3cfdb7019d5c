package mysql

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/repository"

	"gorm.io/gorm"
)

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	var s domain.PlatformSettings
	err := r.db.WithContext(ctx).
		Where(domain.PlatformSettings{ID: domain.SettingsID}).
		Attrs(domain.PlatformSettings{PlatformName: domain.DefaultPlatformName}).
		FirstOrCreate(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.PlatformSettings, error) {
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if upd.PlatformName != nil {
		fields["platform_name"] = *upd.PlatformName
	}
	if upd.PlatformLogo != nil {
		fields["platform_logo"] = *upd.PlatformLogo
	}
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(&domain.PlatformSettings{}).
			Where("id = ?", domain.SettingsID).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(ctx)
}
