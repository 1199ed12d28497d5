package response_models

import (
	"wayfare/internal/models/db_models"
	"wayfare/internal/models/trip_models"
)

type Settings struct {
	SelectedRegion string                  `json:"selected_region"`
	StartingPoint  string                  `json:"starting_point"`
	CurrentView    string                  `json:"current_view"`
	PrivacyMode    bool                    `json:"privacy_mode"`
	OfflineMode    bool                    `json:"offline_mode"`
	VoiceEnabled   bool                    `json:"voice_enabled"`
	Preferences    trip_models.Preferences `json:"preferences"`
}

func BuildSettings(row *db_models.DeviceSettings) *Settings {
	interests := make([]string, len(row.Interests))
	copy(interests, row.Interests)

	return &Settings{
		SelectedRegion: row.SelectedRegion,
		StartingPoint:  row.StartingPoint,
		CurrentView:    row.CurrentView,
		PrivacyMode:    row.PrivacyMode,
		OfflineMode:    row.OfflineMode,
		VoiceEnabled:   row.VoiceEnabled,
		Preferences: trip_models.Preferences{
			Interests:      interests,
			MobilityLevel:  trip_models.MobilityLevel(row.MobilityLevel),
			TimePreference: trip_models.TimePreference(row.TimePreference),
		},
	}
}
