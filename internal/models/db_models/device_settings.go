package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DeviceSettings is the durable per-device settings record. It mirrors the
// persisted key layout of the client: one column per key, defaults applied
// at read time when no row exists yet.
type DeviceSettings struct {
	BaseModel
	DeviceID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	SelectedRegion string
	StartingPoint  string
	CurrentView    string
	PrivacyMode    bool
	OfflineMode    bool
	VoiceEnabled   bool

	Interests      pq.StringArray `gorm:"type:text[]"`
	MobilityLevel  string
	TimePreference string
}
