package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type DeviceRepository interface {
	Create(ctx context.Context, device *db_models.Device) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Device, error)
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(ctx context.Context, device *db_models.Device) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(device).Error; err != nil {
		return uuid.Nil, err
	}
	return device.ID, nil
}

func (r *deviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Device, error) {
	var device db_models.Device
	err := r.db.WithContext(ctx).First(&device, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &device, nil
}
