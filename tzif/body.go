package tzif

import (
	"fmt"
	"io"
)

// body is the decoded form of one TZif data block (the section following a
// Header, up to but not including a following Header or Footer). It is
// deliberately version-agnostic: the only difference between the v1 block
// and the v2+ block is the width of the transition times, which the caller
// selects via timeSize.
type body struct {
	transitions     []int64
	transitionTypes []uint8
	types           []LocalTimeTypeRecord
	designations    []byte
	leapSize        int64 // total bytes consumed by the leap-second table
	stdWallSize     int64 // total bytes consumed by the std/wall indicators
	utLocalSize     int64 // total bytes consumed by the UT/local indicators
}

// readBody reads one data block described by h, starting at byte offset off
// in the overall stream. timeSize is 4 for the version 1 block and 8 for
// every version 2+ block.
func readBody(r io.Reader, h Header, timeSize int, off int64) (body, error) {
	var b body

	if h.Timecnt > 0 {
		raw := make([]byte, int64(h.Timecnt)*int64(timeSize))
		if _, err := io.ReadFull(r, raw); err != nil {
			return b, fmt.Errorf("tzif: read transition times at offset %d: %w: %v", off, ErrShortRead, err)
		}
		b.transitions = make([]int64, h.Timecnt)
		for i := range b.transitions {
			chunk := raw[i*timeSize : (i+1)*timeSize]
			if timeSize == 4 {
				b.transitions[i] = int64(int32(order.Uint32(chunk)))
			} else {
				b.transitions[i] = int64(order.Uint64(chunk))
			}
		}
		off += int64(len(raw))

		types := make([]byte, h.Timecnt)
		if _, err := io.ReadFull(r, types); err != nil {
			return b, fmt.Errorf("tzif: read transition types at offset %d: %w: %v", off, ErrShortRead, err)
		}
		b.transitionTypes = make([]uint8, h.Timecnt)
		for i, t := range types {
			if uint32(t) >= h.Typecnt {
				return b, fmt.Errorf("tzif: at offset %d: %w: transition type index %d out of range [0, %d)", off, ErrMalformedBody, t, h.Typecnt)
			}
			b.transitionTypes[i] = t
		}
		off += int64(len(types))
	}

	if h.Typecnt > 0 {
		raw := make([]byte, int64(h.Typecnt)*6)
		if _, err := io.ReadFull(r, raw); err != nil {
			return b, fmt.Errorf("tzif: read local time type records at offset %d: %w: %v", off, ErrShortRead, err)
		}
		b.types = make([]LocalTimeTypeRecord, h.Typecnt)
		for i := range b.types {
			chunk := raw[i*6 : (i+1)*6]
			idx := chunk[5]
			if uint32(idx) >= h.Charcnt {
				return b, fmt.Errorf("tzif: at offset %d: %w: abbreviation index %d out of range [0, %d)", off, ErrMalformedBody, idx, h.Charcnt)
			}
			b.types[i] = LocalTimeTypeRecord{
				Utoff: int32(order.Uint32(chunk[0:4])),
				Dst:   chunk[4] != 0,
				Idx:   idx,
			}
		}
		off += int64(len(raw))
	}

	if h.Charcnt > 0 {
		b.designations = make([]byte, h.Charcnt)
		if _, err := io.ReadFull(r, b.designations); err != nil {
			return b, fmt.Errorf("tzif: read time zone designations at offset %d: %w: %v", off, ErrShortRead, err)
		}
		if b.designations[len(b.designations)-1] != 0 {
			return b, fmt.Errorf("tzif: at offset %d: %w: time zone designations do not end in NUL", off, ErrMalformedBody)
		}
		off += int64(len(b.designations))
	}

	b.leapSize = int64(h.Leapcnt) * (int64(timeSize) + 4)
	b.stdWallSize = int64(h.Isstdcnt)
	b.utLocalSize = int64(h.Isutcnt)

	skip := b.leapSize + b.stdWallSize + b.utLocalSize
	if skip > 0 {
		if _, err := io.CopyN(io.Discard, r, skip); err != nil {
			return b, fmt.Errorf("tzif: skip leap/std/ut tables at offset %d: %w: %v", off, ErrShortRead, err)
		}
	}

	return b, nil
}

// abbreviation returns the NUL-terminated designation string starting at
// byte idx of the packed designations blob.
func abbreviation(designations []byte, idx uint8) string {
	end := int(idx)
	for end < len(designations) && designations[end] != 0 {
		end++
	}
	return string(designations[idx:end])
}
