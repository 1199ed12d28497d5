package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

// storageWarning is surfaced when a durable write fails. The change still
// holds for the running process; only persistence is degraded.
const storageWarning = "settings could not be saved and may not survive a restart"

type SettingsServiceInterface interface {
	// Get never fails the caller: a broken database degrades to the
	// documented defaults plus a warning.
	Get(ctx context.Context, deviceID string) (*response_models.Settings, string, error)
	Patch(ctx context.Context, deviceID string, req request_models.SettingsPatch) (*response_models.Settings, string, error)
	MergePreferences(ctx context.Context, deviceID string, req request_models.PreferencesPatch) (*response_models.Settings, string, error)
	SetView(ctx context.Context, deviceID string, view trip_models.ViewType) (*response_models.Settings, string, error)
	SetSelectedRegion(ctx context.Context, deviceID string, regionID string) string
	VoiceEnabled(ctx context.Context, deviceID string) bool
}

type SettingsService struct {
	repo   repositories.SettingsRepository
	logger *zap.Logger
}

func NewSettingsService(repo repositories.SettingsRepository, logger *zap.Logger) SettingsServiceInterface {
	return &SettingsService{repo: repo, logger: logger}
}

func defaultRow(deviceID uuid.UUID) *db_models.DeviceSettings {
	prefs := trip_models.DefaultPreferences()
	return &db_models.DeviceSettings{
		DeviceID:       deviceID,
		CurrentView:    string(trip_models.ViewPlanning),
		Interests:      prefs.Interests,
		MobilityLevel:  string(prefs.MobilityLevel),
		TimePreference: string(prefs.TimePreference),
	}
}

// load fetches the row or synthesizes the defaults. The returned warning is
// non-empty when the read itself failed.
func (s *SettingsService) load(ctx context.Context, deviceID string) (*db_models.DeviceSettings, string, error) {
	id, err := uuid.Parse(deviceID)
	if err != nil {
		return nil, "", utils.ErrInvalidInput
	}

	row, err := s.repo.GetByDeviceID(ctx, id)
	if err != nil {
		s.logger.Warn("settings read failed, serving defaults",
			zap.String("device_id", deviceID), zap.Error(err))
		return defaultRow(id), storageWarning, nil
	}
	if row == nil {
		return defaultRow(id), "", nil
	}
	return row, "", nil
}

// save persists the row; failure is logged and reported as a warning, never
// as an error.
func (s *SettingsService) save(ctx context.Context, row *db_models.DeviceSettings) string {
	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Warn("settings write failed",
			zap.String("device_id", row.DeviceID.String()), zap.Error(err))
		return storageWarning
	}
	return ""
}

func (s *SettingsService) Get(ctx context.Context, deviceID string) (*response_models.Settings, string, error) {
	row, warning, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, "", err
	}
	return response_models.BuildSettings(row), warning, nil
}

func (s *SettingsService) Patch(ctx context.Context, deviceID string, req request_models.SettingsPatch) (*response_models.Settings, string, error) {
	row, _, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, "", err
	}

	if req.SelectedRegion != nil {
		row.SelectedRegion = *req.SelectedRegion
	}
	if req.StartingPoint != nil {
		row.StartingPoint = *req.StartingPoint
	}
	if req.CurrentView != nil {
		if !trip_models.ViewType(*req.CurrentView).Valid() {
			return nil, "", utils.ErrInvalidView
		}
		row.CurrentView = *req.CurrentView
	}
	if req.PrivacyMode != nil {
		row.PrivacyMode = *req.PrivacyMode
	}
	if req.OfflineMode != nil {
		row.OfflineMode = *req.OfflineMode
	}
	if req.VoiceEnabled != nil {
		row.VoiceEnabled = *req.VoiceEnabled
	}

	warning := s.save(ctx, row)
	return response_models.BuildSettings(row), warning, nil
}

// MergePreferences is a partial overwrite: absent fields keep their stored
// values.
func (s *SettingsService) MergePreferences(ctx context.Context, deviceID string, req request_models.PreferencesPatch) (*response_models.Settings, string, error) {
	row, _, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, "", err
	}

	if req.Interests != nil {
		row.Interests = dedupeTags(*req.Interests)
	}
	if req.MobilityLevel != nil {
		if !trip_models.MobilityLevel(*req.MobilityLevel).Valid() {
			return nil, "", utils.ErrInvalidInput
		}
		row.MobilityLevel = *req.MobilityLevel
	}
	if req.TimePreference != nil {
		if !trip_models.TimePreference(*req.TimePreference).Valid() {
			return nil, "", utils.ErrInvalidInput
		}
		row.TimePreference = *req.TimePreference
	}

	warning := s.save(ctx, row)
	return response_models.BuildSettings(row), warning, nil
}

func (s *SettingsService) SetView(ctx context.Context, deviceID string, view trip_models.ViewType) (*response_models.Settings, string, error) {
	if !view.Valid() {
		return nil, "", utils.ErrInvalidView
	}
	v := string(view)
	return s.Patch(ctx, deviceID, request_models.SettingsPatch{CurrentView: &v})
}

// SetSelectedRegion records the region choice so a restart restores it. Used
// by the region service; failures stay non-fatal there too.
func (s *SettingsService) SetSelectedRegion(ctx context.Context, deviceID string, regionID string) string {
	row, _, err := s.load(ctx, deviceID)
	if err != nil {
		return storageWarning
	}
	row.SelectedRegion = regionID
	return s.save(ctx, row)
}

func (s *SettingsService) VoiceEnabled(ctx context.Context, deviceID string) bool {
	row, _, err := s.load(ctx, deviceID)
	if err != nil {
		return false
	}
	return row.VoiceEnabled
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
