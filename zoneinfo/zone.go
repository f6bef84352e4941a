package zoneinfo

import (
	"io"
	"sort"
	"time"

	"github.com/pganssle/zoneinfo/internal/civil"
	"github.com/pganssle/zoneinfo/posixtz"
	"github.com/pganssle/zoneinfo/tzif"
)

// afterKind tags the two ways a Zone can answer queries past its last
// recorded transition: either a single fixed record, or a POSIX rule that
// must be evaluated per-year. The kind is decided once at construction
// time so that queries never need a type switch.
type afterKind int

const (
	afterStatic afterKind = iota
	afterRecurrence
)

type after struct {
	kind   afterKind
	static *TypeRecord
	rule   posixtz.Rule
}

// Zone is the immutable, queryable representation of one IANA time zone:
// the decoded TZif transition table plus the governing records for
// instants before the first and after the last transition. A *Zone is
// safe for concurrent use by multiple goroutines once returned from
// FromFile or FromReaderWithKey.
type Zone struct {
	key    string
	table  transitionTable
	before *TypeRecord
	after  after
}

// Key returns the zone's identifying key (e.g. "America/New_York"), or
// the empty string for a zone built from an anonymous byte stream.
func (z *Zone) Key() string { return z.key }

// FromFile decodes a TZif byte stream into an unkeyed Zone.
func FromFile(r io.Reader) (*Zone, error) {
	return build("", r)
}

// FromReaderWithKey decodes a TZif byte stream into a Zone tagged with
// key. Used by tzsource-backed lookups, which already know the key the
// bytes were resolved from.
func FromReaderWithKey(key string, r io.Reader) (*Zone, error) {
	return build(key, r)
}

func build(key string, r io.Reader) (*Zone, error) {
	d, err := tzif.DecodeData(r)
	if err != nil {
		return nil, err
	}

	dstOffsets := inferDST(d.TransitionTypes, d.Types)

	typesByIndex := make([]*TypeRecord, len(d.Types))
	for i, tr := range d.Types {
		typesByIndex[i] = internTypeRecord(
			time.Duration(tr.Utoff)*secondDuration,
			dstOffsets[i],
			d.Abbreviation(tr.Idx),
		)
	}

	perTransition := make([]*TypeRecord, len(d.TransitionTypes))
	for i, ti := range d.TransitionTypes {
		perTransition[i] = typesByIndex[ti]
	}

	firstType := firstTypeRecord(typesByIndex)
	fold0, fold1 := buildLocalIndex(d.Transitions, d.TransitionTypes, typesByIndex, firstType)

	z := &Zone{
		key: key,
		table: transitionTable{
			utc:        d.Transitions,
			localFold0: fold0,
			localFold1: fold1,
			types:      perTransition,
		},
	}
	z.before = computeBefore(d.Types, typesByIndex)

	z.after, err = computeAfter(d.TZString, perTransition, z.before)
	if err != nil {
		return nil, err
	}

	return z, nil
}

func firstTypeRecord(typesByIndex []*TypeRecord) *TypeRecord {
	if len(typesByIndex) > 0 {
		return typesByIndex[0]
	}
	return internTypeRecord(0, 0, "UTC")
}

// computeBefore finds the governing record for instants strictly before
// the first transition: the first non-DST type in file order, else the
// first type, else a synthesized UTC record if the file has no types at
// all.
func computeBefore(types []tzif.LocalTimeTypeRecord, typesByIndex []*TypeRecord) *TypeRecord {
	for i, tr := range types {
		if !tr.Dst {
			return typesByIndex[i]
		}
	}
	return firstTypeRecord(typesByIndex)
}

// computeAfter decides how instants after the last transition are
// classified: the last transition's own type if there is no POSIX
// trailer, a POSIX static offset if the trailer has no DST component, or
// a recurrence rule evaluated per-year otherwise.
func computeAfter(tzString string, perTransition []*TypeRecord, before *TypeRecord) (after, error) {
	if tzString == "" {
		if len(perTransition) > 0 {
			return after{kind: afterStatic, static: perTransition[len(perTransition)-1]}, nil
		}
		return after{kind: afterStatic, static: before}, nil
	}

	rule, err := posixtz.Parse(tzString)
	if err != nil {
		return after{}, err
	}
	if !rule.HasDST {
		rec := internTypeRecord(time.Duration(rule.StdOffset)*secondDuration, 0, rule.StdAbbr)
		return after{kind: afterStatic, static: rec}, nil
	}
	return after{kind: afterRecurrence, rule: rule}, nil
}

// OffsetAt returns the UTC offset, DST offset, and abbreviation in effect
// at the given local civil time. When c.Fold selects one side of an
// ambiguous (folded) or nonexistent (gap) local time, the corresponding
// side's record is returned; see CivilTime.
//
// It returns ErrOutOfRange if c.Year falls outside the range civil-time
// arithmetic can represent.
func (z *Zone) OffsetAt(c CivilTime) (utcOffset, dstOffset time.Duration, abbrev string, err error) {
	if !civil.InRange(c.Year) {
		return 0, 0, "", ErrOutOfRange
	}
	rec := z.recordAt(c)
	return rec.UTCOffset, rec.DSTOffset, rec.Abbrev, nil
}

func (z *Zone) recordAt(c CivilTime) *TypeRecord {
	ts := civil.FromDateTime(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)

	n := z.table.len()
	if n == 0 {
		return z.classifyAfterLocal(ts, c.Year, c.Fold)
	}

	local := z.table.localFold(c.Fold)
	if ts < local[0] {
		return z.before
	}
	if ts > local[n-1] {
		return z.classifyAfterLocal(ts, c.Year, c.Fold)
	}

	i := sort.Search(n, func(i int) bool { return local[i] > ts }) - 1
	return z.table.types[i]
}

func (z *Zone) classifyAfterLocal(ts int64, year int, fold bool) *TypeRecord {
	if z.after.kind == afterStatic {
		return z.after.static
	}
	offset, isDST, abbrev := z.after.rule.ClassifyLocal(ts, year, fold)
	var dstOff int
	if isDST {
		dstOff = offset - z.after.rule.StdOffset
	}
	return internTypeRecord(time.Duration(offset)*secondDuration, time.Duration(dstOff)*secondDuration, abbrev)
}

// FromUTC converts a naive UTC civil time (i.e. one with no offset
// applied) to local civil time, setting Fold when the result falls in an
// ambiguous window.
//
// Grounded on CPython zoneinfo's IANAZone.fromutc, including its
// documented asymmetry with OffsetAt/recordAt: anything before the
// *second* transition (not the first) is treated as "before". The first
// TZif transition is typically a synthetic LMT->standard jump whose
// pre-image is exactly the "before" region, and zdump conventions report
// it that way; changing this to compare against the first transition
// would silently break round-trips for instants near the epoch.
//
// It returns ErrOutOfRange if utc.Year falls outside the range civil-time
// arithmetic can represent.
func (z *Zone) FromUTC(utc CivilTime) (CivilTime, error) {
	if !civil.InRange(utc.Year) {
		return CivilTime{}, ErrOutOfRange
	}

	ts := civil.FromDateTime(utc.Year, utc.Month, utc.Day, utc.Hour, utc.Minute, utc.Second)

	n := z.table.len()

	var rec *TypeRecord
	var fold bool

	switch {
	case n == 0:
		rec, fold = z.classifyAfterUTC(ts, utc.Year)
	case n == 1:
		if ts > z.table.utc[0] {
			rec, fold = z.classifyAfterUTC(ts, utc.Year)
		} else {
			rec, fold = z.before, false
		}
	case ts < z.table.utc[1]:
		rec, fold = z.before, false
	case ts > z.table.utc[n-1]:
		rec, fold = z.classifyAfterUTC(ts, utc.Year)
	default:
		i := sort.Search(n, func(i int) bool { return z.table.utc[i] > ts })
		prev := z.table.types[i-2]
		curr := z.table.types[i-1]
		rec = curr
		shift := prev.UTCOffset - curr.UTCOffset
		fold = shift > time.Duration(ts-z.table.utc[i-1])*secondDuration
	}

	localTS := ts + int64(rec.UTCOffset/secondDuration)
	year, month, day, hour, minute, second := civil.ToDateTime(localTS)
	return CivilTime{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		Fold: fold,
	}, nil
}

func (z *Zone) classifyAfterUTC(ts int64, year int) (*TypeRecord, bool) {
	if z.after.kind == afterStatic {
		return z.after.static, false
	}
	offset, isDST, abbrev, fold := z.after.rule.ClassifyUTC(ts, year)
	var dstOff int
	if isDST {
		dstOff = offset - z.after.rule.StdOffset
	}
	return internTypeRecord(time.Duration(offset)*secondDuration, time.Duration(dstOff)*secondDuration, abbrev), fold
}
