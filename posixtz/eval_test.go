package posixtz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Rule {
	t.Helper()
	r, err := Parse(s)
	require.NoError(t, err)
	return r
}

func TestClassifyLocalGap(t *testing.T) {
	// EST5EDT: on 2023-03-12 clocks jump from 02:00 to 03:00. 02:30 local
	// never happened.
	r := mustParse(t, "EST5EDT,M3.2.0,M11.1.0")
	start, _ := r.Transitions(2023)

	gapTime := start + 30*60 // 02:30 local, naive

	offFold0, dstFold0, _ := r.ClassifyLocal(gapTime, 2023, false)
	offFold1, dstFold1, _ := r.ClassifyLocal(gapTime, 2023, true)

	// Both folds resolve the gap to a definite answer (one of the two
	// sides), even though the wall-clock time never existed.
	assert.NotEqual(t, offFold0, offFold1)
	assert.False(t, dstFold0) // fold=0 lands on the pre-transition (std) side
	assert.True(t, dstFold1)  // fold=1 lands on the post-transition (dst) side
}

func TestClassifyLocalFold(t *testing.T) {
	// EST5EDT: on 2023-11-05 clocks fall back from 02:00 EDT to 01:00 EST.
	// 01:30 local happens twice.
	r := mustParse(t, "EST5EDT,M3.2.0,M11.1.0")
	_, end := r.Transitions(2023)

	foldTime := end - 30*60 // 01:30 local, naive

	off0, dst0, _ := r.ClassifyLocal(foldTime, 2023, false)
	off1, dst1, _ := r.ClassifyLocal(foldTime, 2023, true)

	assert.True(t, dst0)
	assert.False(t, dst1)
	assert.Equal(t, -4*3600, off0)
	assert.Equal(t, -5*3600, off1)
}

func TestClassifyUTCInsideDST(t *testing.T) {
	r := mustParse(t, "EST5EDT,M3.2.0,M11.1.0")

	// Well into DST: 2023-07-01 00:00:00 UTC is 2023-06-30 20:00:00 EDT.
	ts := epochFromUTCWallClock(2023, 7, 1, 0, 0, 0)
	off, isDST, abbr, fold := r.ClassifyUTC(ts, 2023)
	assert.True(t, isDST)
	assert.Equal(t, "EDT", abbr)
	assert.Equal(t, -4*3600, off)
	assert.False(t, fold)
}

func TestClassifyUTCFoldWindow(t *testing.T) {
	r := mustParse(t, "EST5EDT,M3.2.0,M11.1.0")
	_, end := r.Transitions(2023)
	utcEnd := end - int64(r.DstOffset)

	// The first hour after the DST->STD transition, in UTC, is ambiguous
	// in local time.
	_, _, _, foldAtEnd := r.ClassifyUTC(utcEnd, 2023)
	_, _, _, foldJustBefore := r.ClassifyUTC(utcEnd-1, 2023)
	_, _, _, foldJustAfterWindow := r.ClassifyUTC(utcEnd+3600, 2023)

	assert.True(t, foldAtEnd)
	assert.False(t, foldJustBefore)
	assert.False(t, foldJustAfterWindow)
}

func TestClassifyUTCNegativeDSTFoldWindow(t *testing.T) {
	// Europe/Dublin-style negative DST: DstDiff < 0, so the ambiguous
	// window sits before `start`, not at `end`.
	r := mustParse(t, "IST-1GMT0,M10.5.0,M3.5.0/1")
	start, _ := r.Transitions(2023)
	utcStart := start - int64(r.StdOffset)

	ambigBegin := utcStart + int64(r.DstDiff) // DstDiff is negative

	_, _, _, foldAtBoundary := r.ClassifyUTC(ambigBegin, 2023)
	_, _, _, foldJustBeforeStart := r.ClassifyUTC(utcStart-1, 2023)
	_, _, _, foldAtStart := r.ClassifyUTC(utcStart, 2023)

	assert.True(t, foldAtBoundary)
	assert.True(t, foldJustBeforeStart)
	assert.False(t, foldAtStart)
}

func TestClassifyStaticAlwaysStd(t *testing.T) {
	r := mustParse(t, "<+11>-11")
	off, isDST, abbr := r.ClassifyLocal(0, 2023, false)
	assert.False(t, isDST)
	assert.Equal(t, "+11", abbr)
	assert.Equal(t, 11*3600, off)
}

func TestClassifyPermanentDST(t *testing.T) {
	// EST5EDT,0/0,J365/25: DST year-round, the end rule (Dec 31 at
	// 25:00, i.e. Jan 1 01:00) never actually occurs before the start of
	// the next year's rule.
	r := mustParse(t, "EST5EDT,0/0,J365/25")
	require.True(t, r.HasDST)

	midyear := epochFromUTCWallClock(2023, 6, 15, 12, 0, 0)
	_, isDST, abbr := r.ClassifyLocal(midyear, 2023, false)
	assert.True(t, isDST)
	assert.Equal(t, "EDT", abbr)
}
