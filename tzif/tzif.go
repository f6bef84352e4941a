// Package tzif decodes the TZif binary time zone format defined by RFC 8536
// (https://datatracker.ietf.org/doc/html/rfc8536). It supports versions 1,
// 2 and 3, and reads version >= 4 files conservatively by reusing the
// version 2/3 code path for the 8-octet time fields.
//
// The package only decodes; it has no opinion about DST inference, POSIX
// TZ string evaluation, or offset lookup — those live in the sibling
// posixtz and zoneinfo packages.
package tzif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// NOTE: All multi-octet integer values MUST be stored in network octet
// order format (high-order octet first, otherwise known as big-endian),
// with all bits significant. Signed integer values MUST be represented
// using two's complement.
var order = binary.BigEndian

// Version identifies the version octet of a TZif file.
type Version byte

const (
	// V1 is version 1: 32-bit transition times, no footer.
	V1 Version = 0x00
	// V2 is version 2: adds a 64-bit data block and a TZ string footer.
	V2 Version = 0x32 // '2'
	// V3 is version 3: like V2, with the extended TZ string grammar
	// described in RFC 8536 section 3.3.1.
	V3 Version = 0x33 // '3'
	// V4 is not part of RFC 8536 as of this writing, but is documented in
	// the tzfile(5) man page. We read it the same way as V2/V3: it only
	// changes how leap-second records at the start/end of the table are to
	// be interpreted, which this package never exposes (see Non-goals).
	V4 Version = 0x34 // '4'
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1 (0x00)"
	case V2:
		return "V2 ('2')"
	case V3:
		return "V3 ('3')"
	case V4:
		return "V4 ('4')"
	default:
		return fmt.Sprintf("<unrecognized version 0x%02x>", byte(v))
	}
}

// uses64BitTimes reports whether a header of this version has 8-octet
// transition times. Version 1 uses 4-octet times; every other version we
// accept is read the same way version 2/3 are.
func (v Version) uses64BitTimes() bool {
	return v != V1
}

// Magic is the four-octet ASCII sequence identifying a TZif stream.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

const headerSize = 4 + 1 + 15 + 6*4 // magic + version + reserved + 6 counts

// Header is the 44-byte fixed TZif header.
type Header struct {
	Version  Version
	Isutcnt  uint32
	Isstdcnt uint32
	Leapcnt  uint32
	Timecnt  uint32
	Typecnt  uint32
	Charcnt  uint32
}

// readHeader reads exactly 44 bytes from r: the four-byte magic, the
// version octet, 15 reserved bytes, and six big-endian uint32 counts. off
// is the byte offset of the start of the header within the overall stream,
// used only to annotate errors.
func readHeader(r io.Reader, off int64) (Header, error) {
	var h Header

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return h, fmt.Errorf("tzif: read header at offset %d: %w: %v", off, ErrShortRead, err)
	}

	if !bytes.Equal(buf[:4], Magic[:]) {
		return h, fmt.Errorf("tzif: at offset %d: %w: got %q", off, ErrBadMagic, buf[:4])
	}

	switch buf[4] {
	case 0x00:
		h.Version = V1
	case '2':
		h.Version = V2
	case '3':
		h.Version = V3
	case '4':
		h.Version = V4
	default:
		if buf[4] > '4' {
			// Read conservatively: anything claiming to be a future
			// version is decoded the same way as V2/V3, per §6.
			h.Version = Version(buf[4])
		} else {
			return h, fmt.Errorf("tzif: at offset %d: %w: got 0x%02x", off, ErrBadVersion, buf[4])
		}
	}

	counts := buf[4+1+15:]
	rawCounts := [6]int32{}
	for i := range rawCounts {
		rawCounts[i] = int32(order.Uint32(counts[i*4 : i*4+4]))
	}
	for _, c := range rawCounts {
		if c < 0 {
			return h, fmt.Errorf("tzif: at offset %d: %w: negative count %d", off, ErrMalformedBody, c)
		}
	}
	h.Isutcnt = uint32(rawCounts[0])
	h.Isstdcnt = uint32(rawCounts[1])
	h.Leapcnt = uint32(rawCounts[2])
	h.Timecnt = uint32(rawCounts[3])
	h.Typecnt = uint32(rawCounts[4])
	h.Charcnt = uint32(rawCounts[5])

	return h, nil
}

// LocalTimeTypeRecord is a six-octet local time type record: the UTC
// offset in seconds, the isdst flag, and an index into the abbreviation
// blob.
type LocalTimeTypeRecord struct {
	// Utoff is seconds to add to UT to get local time.
	Utoff int32
	// Dst is true if this type represents daylight saving time.
	Dst bool
	// Idx indexes into the abbreviation blob; the abbreviation is the
	// NUL-terminated string starting there.
	Idx uint8
}
