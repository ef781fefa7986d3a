package model

import (
	"errors"

	"rehearsal_booking/constants"
)

// Rejections a submission can come back with. The error text is the wire
// message, so handlers serve err.Error() as the response body.
var (
	ErrWrongEmail   = errors.New(constants.MSG_WRONG_EMAIL)
	ErrWrongHour    = errors.New(constants.MSG_WRONG_HOUR)
	ErrSlotReserved = errors.New(constants.MSG_RESERVED)
)

// IsRejection reports whether err is a caller-input rejection rather than a
// store fault.
func IsRejection(err error) bool {
	return errors.Is(err, ErrWrongEmail) ||
		errors.Is(err, ErrWrongHour) ||
		errors.Is(err, ErrSlotReserved)
}
