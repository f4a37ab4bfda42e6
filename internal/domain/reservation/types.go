package reservation

import "weekly-booking/internal/pkg/errs"

// ErrValidationFailed is the only validation error callers should act on.
// The specific check that failed is kept in the error chain for logging.
var ErrValidationFailed = errs.New("reservation validation failed")

var (
	ErrMissingField    = errs.New("required field missing")
	ErrNameTooLong     = errs.New("name too long")
	ErrWeekOutOfRange  = errs.New("week number out of range")
	ErrYearOutOfRange  = errs.New("year out of range")
	ErrCellOutOfRange  = errs.New("cell id out of range")
	ErrEmailTooLong    = errs.New("email too long")
	ErrMessageTooLong  = errs.New("message too long")
	ErrInvalidIdentity = errs.New("reservation identity is invalid")
)

const (
	// Names must be strictly shorter than MaxNameLength characters.
	MaxNameLength    = 60
	MaxEmailLength   = 50
	MaxMessageLength = 500

	MinCellID = 0
	MaxCellID = 62
)
