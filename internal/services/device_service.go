package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type DeviceServiceInterface interface {
	Register(ctx context.Context, label string) (*response_models.DeviceRegistration, error)

	// Get resolves a device id from a token back to its record.
	Get(ctx context.Context, deviceID string) (*response_models.DeviceInfo, error)
}

type DeviceService struct {
	repo   repositories.DeviceRepository
	logger *zap.Logger
}

func NewDeviceService(repo repositories.DeviceRepository, logger *zap.Logger) DeviceServiceInterface {
	return &DeviceService{repo: repo, logger: logger}
}

func (d *DeviceService) Register(ctx context.Context, label string) (*response_models.DeviceRegistration, error) {
	id, err := d.repo.Create(ctx, &db_models.Device{Label: label})
	if err != nil {
		d.logger.Error("device create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateDeviceToken(id)
	if err != nil {
		d.logger.Error("token issue failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DeviceRegistration{
		DeviceID: id.String(),
		Token:    token,
	}, nil
}

func (d *DeviceService) Get(ctx context.Context, deviceID string) (*response_models.DeviceInfo, error) {
	id, err := uuid.Parse(deviceID)
	if err != nil {
		return nil, utils.ErrDeviceNotFound
	}

	device, err := d.repo.GetByID(ctx, id)
	if err != nil {
		d.logger.Error("device lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if device == nil {
		return nil, utils.ErrDeviceNotFound
	}

	return &response_models.DeviceInfo{
		DeviceID:     device.ID.String(),
		Label:        device.Label,
		RegisteredAt: device.CreatedAt,
	}, nil
}
