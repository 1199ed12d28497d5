package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wayfare/internal/models/db_models"
)

type SettingsRepository interface {
	GetByDeviceID(ctx context.Context, deviceID uuid.UUID) (*db_models.DeviceSettings, error)
	Upsert(ctx context.Context, settings *db_models.DeviceSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetByDeviceID returns nil, nil when the device has never written settings;
// the service layers defaults on top.
func (r *settingsRepository) GetByDeviceID(ctx context.Context, deviceID uuid.UUID) (*db_models.DeviceSettings, error) {
	var settings db_models.DeviceSettings
	err := r.db.WithContext(ctx).
		First(&settings, "device_id = ?", deviceID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *db_models.DeviceSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
