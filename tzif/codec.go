package tzif

import (
	"io"
)

// Data is the fully decoded content of a TZif stream: the authoritative
// data block (the only block, for a v1 file; the v2+ block, for v2/v3/v4
// files — the v1 prefix that must precede it is read and validated but
// discarded, per RFC 8536 section 3.2) plus the trailing TZ string, if any.
type Data struct {
	// Version is the highest version header found in the stream.
	Version Version

	// Transitions holds the UTC transition timestamps in strictly
	// ascending order.
	Transitions []int64

	// TransitionTypes holds, for each entry in Transitions, the index into
	// Types describing the type in effect at and after that transition.
	TransitionTypes []uint8

	// Types holds the local time type records referenced by
	// TransitionTypes and by the abbreviation lookups below.
	Types []LocalTimeTypeRecord

	// Designations is the packed, NUL-delimited blob of time zone
	// abbreviations. Use Abbreviation to read one out by index.
	Designations []byte

	// TZString is the POSIX-ish trailer from the version 2+ footer. It is
	// empty both when the file is version 1 (no footer exists) and when a
	// version 2+ file has an explicitly empty trailer.
	TZString string
}

// Abbreviation returns the designation string starting at byte offset idx
// of Designations, i.e. the string named by a LocalTimeTypeRecord's Idx.
func (d Data) Abbreviation(idx uint8) string {
	return abbreviation(d.Designations, idx)
}

// DecodeData reads a complete TZif stream from r: the header, its data
// block, and — for version 2 and above — the second (64-bit) header, its
// data block, and the footer. Version 1 data is read fully (so truncation
// and internal inconsistency are caught) but discarded once a version 2+
// block is found, since the 64-bit block is always authoritative when
// present.
func DecodeData(r io.Reader) (Data, error) {
	var (
		d   Data
		off int64
	)

	h, err := readHeader(r, off)
	if err != nil {
		return d, err
	}
	off += headerSize

	b, err := readBody(r, h, 4, off)
	if err != nil {
		return d, err
	}
	off += v1BodyLen(h)

	if h.Version == V1 {
		d.Version = V1
		d.Transitions = b.transitions
		d.TransitionTypes = b.transitionTypes
		d.Types = b.types
		d.Designations = b.designations
		return d, nil
	}

	// Version 2+: a second header and 64-bit data block follow immediately.
	h2, err := readHeader(r, off)
	if err != nil {
		return d, err
	}
	off += headerSize

	b2, err := readBody(r, h2, 8, off)
	if err != nil {
		return d, err
	}
	off += v2BodyLen(h2, 8)

	tzStr, err := readFooter(r, off)
	if err != nil {
		return d, err
	}

	d.Version = h2.Version
	d.Transitions = b2.transitions
	d.TransitionTypes = b2.transitionTypes
	d.Types = b2.types
	d.Designations = b2.designations
	d.TZString = tzStr

	return d, nil
}

func v1BodyLen(h Header) int64 {
	return int64(h.Timecnt)*5 + int64(h.Typecnt)*6 + int64(h.Charcnt) +
		int64(h.Leapcnt)*8 + int64(h.Isstdcnt) + int64(h.Isutcnt)
}

func v2BodyLen(h Header, timeSize int64) int64 {
	return int64(h.Timecnt)*(timeSize+1) + int64(h.Typecnt)*6 + int64(h.Charcnt) +
		int64(h.Leapcnt)*(timeSize+4) + int64(h.Isstdcnt) + int64(h.Isutcnt)
}
