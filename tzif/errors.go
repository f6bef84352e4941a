package tzif

import "errors"

// Sentinel errors identifying the TZif failure taxonomy. Callers should use
// errors.Is against these rather than matching on message text; DecodeData
// wraps each with positional context before returning it.
var (
	// ErrBadMagic is returned when the first four octets of the stream are
	// not the ASCII string "TZif".
	ErrBadMagic = errors.New("tzif: bad magic")

	// ErrBadVersion is returned when the version octet following the magic
	// is not one of NUL, '2', '3' (versions >= 4 are accepted, see DecodeData).
	ErrBadVersion = errors.New("tzif: bad version")

	// ErrShortRead is returned when the stream ends before a structurally
	// required field has been fully read.
	ErrShortRead = errors.New("tzif: short read")

	// ErrMalformedBody is returned when a body is structurally present but
	// violates one of the format's internal consistency rules, e.g. a
	// transition type index that is out of range, or an abbreviation table
	// that does not end on a NUL byte.
	ErrMalformedBody = errors.New("tzif: malformed body")
)
