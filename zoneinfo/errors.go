package zoneinfo

import "errors"

// ErrOutOfRange is returned when a civil time conversion overflows the
// range this package can represent.
var ErrOutOfRange = errors.New("zoneinfo: civil time out of range")
