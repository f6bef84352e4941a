package tzif

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encode writes d back out as a version 2+ TZif stream (a V1 Data is
// written as version 2; any later version is kept): a minimal version 1
// prefix (required by the format even though readers should prefer the
// version 2+ block) followed by the 64-bit block and footer. This exists
// primarily to build round-trip test fixtures; zoneinfo.Zone never writes
// TZif data itself.
func (d Data) Encode(w io.Writer) error {
	version := d.Version
	if version == V1 {
		version = V2
	}

	if err := writeHeader(w, Header{
		Version:  version,
		Timecnt:  uint32(len(d.Transitions)),
		Typecnt:  uint32(len(d.Types)),
		Charcnt:  uint32(len(d.Designations)),
	}); err != nil {
		return fmt.Errorf("tzif: write v1 header: %w", err)
	}
	if err := writeBody(w, d, 4); err != nil {
		return fmt.Errorf("tzif: write v1 body: %w", err)
	}

	if err := writeHeader(w, Header{
		Version:  version,
		Timecnt:  uint32(len(d.Transitions)),
		Typecnt:  uint32(len(d.Types)),
		Charcnt:  uint32(len(d.Designations)),
	}); err != nil {
		return fmt.Errorf("tzif: write v2+ header: %w", err)
	}
	if err := writeBody(w, d, 8); err != nil {
		return fmt.Errorf("tzif: write v2+ body: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", d.TZString); err != nil {
		return fmt.Errorf("tzif: write footer: %w", err)
	}

	return nil
}

func writeHeader(w io.Writer, h Header) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(h.Version)}); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, 15)); err != nil {
		return err
	}
	counts := []uint32{h.Isutcnt, h.Isstdcnt, h.Leapcnt, h.Timecnt, h.Typecnt, h.Charcnt}
	buf := make([]byte, 4)
	for _, c := range counts {
		order.PutUint32(buf, c)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func writeBody(w io.Writer, d Data, timeSize int) error {
	for _, t := range d.Transitions {
		if timeSize == 4 {
			if err := binary.Write(w, order, int32(t)); err != nil {
				return err
			}
		} else {
			if err := binary.Write(w, order, t); err != nil {
				return err
			}
		}
	}
	if _, err := w.Write(d.TransitionTypes); err != nil {
		return err
	}
	for _, t := range d.Types {
		if err := binary.Write(w, order, t.Utoff); err != nil {
			return err
		}
		dst := byte(0)
		if t.Dst {
			dst = 1
		}
		if _, err := w.Write([]byte{dst, t.Idx}); err != nil {
			return err
		}
	}
	if _, err := w.Write(d.Designations); err != nil {
		return err
	}
	return nil
}
