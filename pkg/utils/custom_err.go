package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDatabaseError    = errors.New("database error")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrRegionNotFound   = errors.New("region not found")
	ErrPOINotFound      = errors.New("poi not found")
	ErrNoRegionSelected = errors.New("no region selected")
	ErrDuplicatePOI     = errors.New("poi already in itinerary")
	ErrCorruptItinerary = errors.New("itinerary entry references unknown poi")
	ErrInvalidView      = errors.New("invalid view type")
	ErrOfflineDisabled  = errors.New("offline mode is disabled")
	ErrFetchFailed      = errors.New("simulated fetch failed")
)
