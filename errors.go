package batch

import "errors"

var (
	// Configuration errors.
	ErrMissingSetting = errors.New("batch: missing required setting")
	ErrInvalidSetting = errors.New("batch: invalid setting value")

	// Capability resolution errors.
	ErrMalformedIdentifier = errors.New("batch: malformed capability identifier")
	ErrCapabilityNotFound  = errors.New("batch: capability not found")

	// Store errors.
	ErrRecordExists   = errors.New("batch: run record already exists")
	ErrRecordNotFound = errors.New("batch: run record not found")
)
