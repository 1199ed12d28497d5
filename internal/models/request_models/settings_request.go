package request_models

// SettingsPatch is a merge-update: nil fields keep their stored values.
type SettingsPatch struct {
	SelectedRegion *string `json:"selected_region"`
	StartingPoint  *string `json:"starting_point"`
	CurrentView    *string `json:"current_view" binding:"omitempty,viewtype"`
	PrivacyMode    *bool   `json:"privacy_mode"`
	OfflineMode    *bool   `json:"offline_mode"`
	VoiceEnabled   *bool   `json:"voice_enabled"`
}

// PreferencesPatch partially overwrites the preference object.
type PreferencesPatch struct {
	Interests      *[]string `json:"interests"`
	MobilityLevel  *string   `json:"mobility_level" binding:"omitempty,mobility"`
	TimePreference *string   `json:"time_preference" binding:"omitempty,timepref"`
}

type SetViewRequest struct {
	View string `json:"view" binding:"required,viewtype"`
}

type RegisterDeviceRequest struct {
	Label string `json:"label"`
}
