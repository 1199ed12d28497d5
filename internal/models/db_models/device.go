package db_models

// Device is one registered client installation. All durable and session
// state hangs off its ID.
type Device struct {
	BaseModel
	Label string

	Settings DeviceSettings `gorm:"foreignKey:DeviceID"`
}
