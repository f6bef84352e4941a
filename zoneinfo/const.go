package zoneinfo

import "time"

// secondDuration converts between a plain integer number of seconds (the
// unit every arithmetic routine in this package and in posixtz/tzif works
// in) and time.Duration, the unit TypeRecord exposes to callers.
const secondDuration = time.Second
