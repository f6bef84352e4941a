package posixtz

// Transitions returns the start (into DST) and end (out of DST) instants
// for year, expressed as naive civil timestamps (no UTC offset applied).
// Transitions does not check r.HasDST; for a Rule with no DST component the
// zero-valued day rules yield meaningless instants.
func (r Rule) Transitions(year int) (start, end int64) {
	return r.Start.epoch(year), r.End.epoch(year)
}

// ClassifyLocal determines the offset, designation, and DST status in
// effect at the local civil time ts (in year) under the given fold. fold
// only matters where a local time is repeated or skipped: in a repeated
// interval false selects the first occurrence and true the second; in a
// skipped interval false selects the pre-transition offset and true the
// post-transition one.
//
// Grounded on CPython's zoneinfo._zoneinfo._TZStr._get_trans_info_dst: with
// fold = 0 the period with the smaller offset (denominated in local time)
// starts at the end of the gap and ends at the end of the fold; with
// fold = 1 it runs from the start of the gap to the beginning of the fold.
// Which boundary gets shifted reduces to whether fold equals
// (DstDiff is non-negative).
func (r Rule) ClassifyLocal(ts int64, year int, fold bool) (offset int, isDST bool, abbr string) {
	if !r.HasDST {
		return r.StdOffset, false, r.StdAbbr
	}

	start, end := r.Transitions(year)

	if fold == (r.DstDiff >= 0) {
		end -= int64(r.DstDiff)
	} else {
		start += int64(r.DstDiff)
	}

	var inDST bool
	if start < end {
		inDST = start <= ts && ts < end
	} else {
		inDST = !(end <= ts && ts < start)
	}

	if inDST {
		return r.DstOffset, true, r.DstAbbr
	}
	return r.StdOffset, false, r.StdAbbr
}

// ClassifyUTC determines the offset, designation, DST status, and fold bit
// in effect at the instant ts (in year), where ts is expressed as a naive
// timestamp in UTC (i.e. what you'd get by formatting a UTC instant as if
// it carried no offset).
//
// Grounded on _get_trans_info_dst_fromutc, with one change: the reference
// implementation computes the ambiguous window as the interval
// [end, end+DstDiff) regardless of the sign of DstDiff, which only makes
// sense for positive DST (clocks fall back at the end of DST, creating an
// ambiguous hour right after `end`). For negative DST (DstDiff < 0, as in
// Europe/Dublin's "IST"/"GMT" rule set, where winter is the departure from
// standard time) the ambiguity instead falls right before `start`, when
// clocks move backward into DST: the window is [start+DstDiff, start).
func (r Rule) ClassifyUTC(ts int64, year int) (offset int, isDST bool, abbr string, fold bool) {
	if !r.HasDST {
		return r.StdOffset, false, r.StdAbbr, false
	}

	start, end := r.Transitions(year)
	start -= int64(r.StdOffset)
	end -= int64(r.DstOffset)

	var inDST bool
	if start < end {
		inDST = start <= ts && ts < end
	} else {
		inDST = !(end <= ts && ts < start)
	}

	var ambigStart, ambigEnd int64
	if r.DstDiff > 0 {
		ambigStart, ambigEnd = end, end+int64(r.DstDiff)
	} else {
		ambigStart, ambigEnd = start+int64(r.DstDiff), start
	}
	fold = ts >= ambigStart && ts < ambigEnd

	if inDST {
		return r.DstOffset, true, r.DstAbbr, fold
	}
	return r.StdOffset, false, r.StdAbbr, fold
}
