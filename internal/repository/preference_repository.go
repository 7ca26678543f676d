package repository

import (
	"context"
	"errors"
	"time"

	"moviematch-backend/internal/database"
	"moviematch-backend/internal/models"

	"gorm.io/gorm"
)

type PreferenceRepository interface {
	FindByDevice(ctx context.Context, deviceID string) (*models.UserPreferences, error)
	Upsert(ctx context.Context, prefs *models.UserPreferences) error
}

type preferenceRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewPreferenceRepository(db *database.Database) PreferenceRepository {
	return &preferenceRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *preferenceRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *preferenceRepository) FindByDevice(ctx context.Context, deviceID string) (*models.UserPreferences, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var prefs models.UserPreferences
	err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, prefs *models.UserPreferences) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if prefs.ID != 0 {
		return r.db.WithContext(ctx).Save(prefs).Error
	}

	var existing models.UserPreferences
	err := r.db.WithContext(ctx).Where("device_id = ?", prefs.DeviceID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(prefs).Error
		}
		return err
	}

	prefs.ID = existing.ID
	prefs.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(prefs).Error
}
