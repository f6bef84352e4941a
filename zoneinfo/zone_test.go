package zoneinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pganssle/zoneinfo/internal/civil"
	"github.com/pganssle/zoneinfo/tzif"
)

// encodeFixture is a small helper building a TZif byte stream from the
// pieces a test cares about, letting DST inference and the footer grammar
// do the rest, exactly as a real compiled zone file would.
func encodeFixture(t *testing.T, transitions []int64, transitionTypes []uint8, types []tzif.LocalTimeTypeRecord, designations []byte, tzString string) []byte {
	t.Helper()
	d := tzif.Data{
		Version:         tzif.V2,
		Transitions:     transitions,
		TransitionTypes: transitionTypes,
		Types:           types,
		Designations:    designations,
		TZString:        tzString,
	}
	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	return buf.Bytes()
}

func TestZoneKeyRoundTrip(t *testing.T) {
	raw := encodeFixture(t, nil, nil, nil, []byte{0}, "UTC0")
	z, err := FromReaderWithKey("Etc/UTC", bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "Etc/UTC", z.Key())

	z2, err := FromFile(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "", z2.Key())
}

func TestZoneDecodeErrorPropagates(t *testing.T) {
	_, err := FromFile(bytes.NewReader([]byte("not a tzif file")))
	assert.Error(t, err)
}

// TestZoneWithRealTransitions builds a small fixture resembling a few years
// of America/New_York history: two local time types (EST, EDT) and four
// transitions walking between them, followed by an EST5EDT POSIX trailer
// covering years after the last recorded transition.
func TestZoneWithRealTransitions(t *testing.T) {
	est := tzif.LocalTimeTypeRecord{Utoff: -5 * 3600, Dst: false, Idx: 0}
	edt := tzif.LocalTimeTypeRecord{Utoff: -4 * 3600, Dst: true, Idx: 4}
	designations := append([]byte("EST\x00"), []byte("EDT\x00")...)

	// 2018 and 2019 US spring-forward/fall-back transitions, computed as
	// UTC instants (2 a.m. local EST/EDT on the respective Sunday).
	transitions := []int64{
		civil.FromDateTime(2018, 3, 11, 7, 0, 0),  // EST->EDT
		civil.FromDateTime(2018, 11, 4, 6, 0, 0),  // EDT->EST
		civil.FromDateTime(2019, 3, 10, 7, 0, 0),  // EST->EDT
		civil.FromDateTime(2019, 11, 3, 6, 0, 0),  // EDT->EST
	}
	transitionTypes := []uint8{1, 0, 1, 0}

	raw := encodeFixture(t, transitions, transitionTypes,
		[]tzif.LocalTimeTypeRecord{est, edt}, designations, "EST5EDT,M3.2.0,M11.1.0")

	z, err := FromFile(bytes.NewReader(raw))
	require.NoError(t, err)

	// Well within the recorded transition table: January 2019 is EST.
	off, dst, abbr, err := z.OffsetAt(CivilTime{Year: 2019, Month: 1, Day: 15, Hour: 12})
	require.NoError(t, err)
	assert.Equal(t, -5*secondDuration*3600, off)
	assert.Equal(t, secondDuration*0, dst)
	assert.Equal(t, "EST", abbr)

	// Summer 2019 is EDT.
	off, dst, abbr, err = z.OffsetAt(CivilTime{Year: 2019, Month: 7, Day: 4, Hour: 12})
	require.NoError(t, err)
	assert.Equal(t, -4*secondDuration*3600, off)
	assert.Equal(t, 1*secondDuration*3600, dst)
	assert.Equal(t, "EDT", abbr)

	// Past the last recorded transition, the POSIX trailer takes over:
	// 2030 is not in the table at all.
	off, _, abbr, err = z.OffsetAt(CivilTime{Year: 2030, Month: 1, Day: 15, Hour: 12})
	require.NoError(t, err)
	assert.Equal(t, -5*secondDuration*3600, off)
	assert.Equal(t, "EST", abbr)

	off, _, abbr, err = z.OffsetAt(CivilTime{Year: 2030, Month: 7, Day: 4, Hour: 12})
	require.NoError(t, err)
	assert.Equal(t, -4*secondDuration*3600, off)
	assert.Equal(t, "EDT", abbr)

	// FromUTC on an unambiguous instant round-trips cleanly.
	local, err := z.FromUTC(CivilTime{Year: 2019, Month: 7, Day: 4, Hour: 16})
	require.NoError(t, err)
	assert.Equal(t, CivilTime{Year: 2019, Month: 7, Day: 4, Hour: 12, Fold: false}, local)
}

func TestZoneNoTransitionsStaticTrailer(t *testing.T) {
	raw := encodeFixture(t, nil, nil, nil, []byte{0}, "PST8")
	z, err := FromFile(bytes.NewReader(raw))
	require.NoError(t, err)

	off, dst, abbr, err := z.OffsetAt(CivilTime{Year: 2019, Month: 6, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, -8*secondDuration*3600, off)
	assert.Equal(t, secondDuration*0, dst)
	assert.Equal(t, "PST", abbr)

	local, err := z.FromUTC(CivilTime{Year: 2019, Month: 6, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, CivilTime{Year: 2019, Month: 5, Day: 31, Hour: 16, Fold: false}, local)
}

func TestZoneOffsetAtOutOfRangeYear(t *testing.T) {
	raw := encodeFixture(t, nil, nil, nil, []byte{0}, "PST8")
	z, err := FromFile(bytes.NewReader(raw))
	require.NoError(t, err)

	_, _, _, err = z.OffsetAt(CivilTime{Year: civil.MaxYear + 1, Month: 6, Day: 1})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = z.FromUTC(CivilTime{Year: civil.MinYear - 1, Month: 6, Day: 1})
	assert.ErrorIs(t, err, ErrOutOfRange)
}
