// Package posixtz parses and evaluates the POSIX TZ string grammar used in
// the footer of a version 2+ TZif stream (and historically as the sole
// source of rule data before TZif existed):
//
//	std[offset[dst[offset],start[/time],end[/time]]]
//
// offset is [+|-]hh[:mm[:ss]] with its sign reversed from the usual
// UTC-offset convention (a bare "5" means five hours *west* of UTC), start
// and end are day-of-year recurrence rules (Jn, n, or Mm.w.d), and time is
// the local time of day the transition occurs at, defaulting to 02:00:00.
package posixtz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pganssle/zoneinfo/internal/civil"
)

// Rule is a parsed POSIX TZ string. A Rule either describes a single fixed
// offset (Std only, HasDST false) or a standard/daylight pair with the
// day-of-year rules that govern the switch between them.
type Rule struct {
	StdAbbr   string
	StdOffset int // seconds east of UTC

	HasDST    bool
	DstAbbr   string
	DstOffset int // seconds east of UTC
	DstDiff   int // DstOffset - StdOffset; negative for Europe/Dublin-style "negative DST" zones

	Start, End dayRule
}

var (
	nameRe   = regexp.MustCompile(`^(<[^>]+>|[^0-9:.+-]+)`)
	offsetRe = regexp.MustCompile(`^([+-]?[0-9]{1,2}(:[0-9]{2}(:[0-9]{2})?)?)`)
)

// Parse parses a POSIX TZ string, as found in a TZif version 2+ footer.
func Parse(s string) (Rule, error) {
	var r Rule

	spec, rest, hasRest := strings.Cut(s, ",")

	stdMatch := nameRe.FindString(spec)
	if stdMatch == "" {
		return r, fmt.Errorf("%w: %q: missing std designation", ErrSyntax, s)
	}
	r.StdAbbr = unquoteAbbr(stdMatch)
	spec = spec[len(stdMatch):]

	if off := offsetRe.FindString(spec); off != "" {
		v, err := parseTZDelta(off)
		if err != nil {
			return r, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		r.StdOffset = v
		spec = spec[len(off):]
	}

	dstMatch := nameRe.FindString(spec)
	if dstMatch == "" {
		if hasRest {
			return r, fmt.Errorf("%w: %q: transition rule present without dst designation", ErrSyntax, s)
		}
		if spec != "" {
			return r, fmt.Errorf("%w: %q: unexpected trailing text %q", ErrSyntax, s, spec)
		}
		return r, nil
	}

	r.HasDST = true
	r.DstAbbr = unquoteAbbr(dstMatch)
	spec = spec[len(dstMatch):]

	if off := offsetRe.FindString(spec); off != "" {
		v, err := parseTZDelta(off)
		if err != nil {
			return r, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		r.DstOffset = v
		spec = spec[len(off):]
	} else {
		r.DstOffset = r.StdOffset + 3600
	}
	r.DstDiff = r.DstOffset - r.StdOffset

	if spec != "" {
		return r, fmt.Errorf("%w: %q: unexpected trailing text %q", ErrSyntax, s, spec)
	}
	if !hasRest {
		return r, fmt.Errorf("%w: %q: missing start/end transition rules", ErrSyntax, s)
	}

	startStr, endStr, ok := strings.Cut(rest, ",")
	if !ok {
		return r, fmt.Errorf("%w: %q: expected both a start and end transition rule", ErrSyntax, s)
	}

	start, err := parseDayRule(startStr)
	if err != nil {
		return r, fmt.Errorf("%w: %q: start rule: %v", ErrSyntax, s, err)
	}
	end, err := parseDayRule(endStr)
	if err != nil {
		return r, fmt.Errorf("%w: %q: end rule: %v", ErrSyntax, s, err)
	}
	r.Start, r.End = start, end

	return r, nil
}

func unquoteAbbr(s string) string {
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1]
	}
	return s
}

var tzDeltaRe = regexp.MustCompile(`^(?P<sign>[+-])?(?P<h>[0-9]{1,2})(:(?P<m>[0-9]{2})(:(?P<s>[0-9]{2}))?)?$`)

// parseTZDelta parses the offset grammar [+|-]hh[:mm[:ss]] and returns the
// offset in seconds east of UTC. POSIX offsets are conventionally given
// west-of-UTC (a plain "5" in "EST5EDT" means UTC-5), so the sign is
// inverted here to match the UTC-offset convention used everywhere else in
// this module.
func parseTZDelta(s string) (int, error) {
	m := tzDeltaRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%q is not a valid offset", s)
	}
	names := tzDeltaRe.SubexpNames()
	var sign, h, mm, ss string
	for i, name := range names {
		switch name {
		case "sign":
			sign = m[i]
		case "h":
			h = m[i]
		case "m":
			mm = m[i]
		case "s":
			ss = m[i]
		}
	}
	hv, _ := strconv.Atoi(h)
	mv, _ := atoiOrZero(mm)
	sv, _ := atoiOrZero(ss)
	if hv < 0 || hv > 24 {
		return 0, fmt.Errorf("hour out of range [0, 24]: %d", hv)
	}
	if mv < 0 || mv > 59 {
		return 0, fmt.Errorf("minute out of range [0, 59]: %d", mv)
	}
	if sv < 0 || sv > 59 {
		return 0, fmt.Errorf("second out of range [0, 59]: %d", sv)
	}
	total := hv*3600 + mv*60 + sv
	if sign != "-" {
		total = -total
	}
	return total, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// dayKind selects which of the three POSIX day-rule forms a dayRule uses.
type dayKind int

const (
	dayJulian dayKind = iota
	dayOfYear
	dayCalendar
)

// dayRule is one side (start or end) of a DST recurrence rule: a day of
// the year, expressed in one of the three POSIX forms, plus a local time
// of day the transition occurs at.
type dayRule struct {
	kind dayKind

	julianDay int // Jn form: 1..365, Feb 29 never counted
	yearDay   int // n form: 0..365, Feb 29 counted in leap years

	month, week, weekday int // Mm.w.d form

	hour, minute, second int
}

var (
	mRuleRe = regexp.MustCompile(`^M([0-9]{1,2})\.([0-9])\.([0-9])$`)
)

func parseDayRule(s string) (dayRule, error) {
	datePart, timePart, hasTime := strings.Cut(s, "/")

	var d dayRule
	d.hour, d.minute, d.second = 2, 0, 0

	switch {
	case strings.HasPrefix(datePart, "M"):
		m := mRuleRe.FindStringSubmatch(datePart)
		if m == nil {
			return d, fmt.Errorf("invalid Mm.w.d rule: %q", datePart)
		}
		month, _ := strconv.Atoi(m[1])
		week, _ := strconv.Atoi(m[2])
		weekday, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 {
			return d, fmt.Errorf("month out of range [1, 12]: %d", month)
		}
		if week < 1 || week > 5 {
			return d, fmt.Errorf("week out of range [1, 5]: %d", week)
		}
		if weekday < 0 || weekday > 6 {
			return d, fmt.Errorf("weekday out of range [0, 6]: %d", weekday)
		}
		d.kind = dayCalendar
		d.month, d.week, d.weekday = month, week, weekday

	case strings.HasPrefix(datePart, "J"):
		n, err := strconv.Atoi(datePart[1:])
		if err != nil {
			return d, fmt.Errorf("invalid Jn rule: %q", datePart)
		}
		if n < 1 || n > 365 {
			return d, fmt.Errorf("julian day out of range [1, 365]: %d", n)
		}
		d.kind = dayJulian
		d.julianDay = n

	default:
		n, err := strconv.Atoi(datePart)
		if err != nil {
			return d, fmt.Errorf("invalid day-of-year rule: %q", datePart)
		}
		if n < 0 || n > 365 {
			return d, fmt.Errorf("day of year out of range [0, 365]: %d", n)
		}
		d.kind = dayOfYear
		d.yearDay = n
	}

	if hasTime {
		parts := strings.Split(timePart, ":")
		if len(parts) > 3 {
			return d, fmt.Errorf("invalid transition time: %q", timePart)
		}
		vals := [3]int{}
		for i, p := range parts {
			v, err := strconv.Atoi(p)
			if err != nil {
				return d, fmt.Errorf("invalid transition time: %q", timePart)
			}
			vals[i] = v
		}
		d.hour, d.minute, d.second = vals[0], vals[1], vals[2]
	}

	return d, nil
}

// epoch returns the naive (no-offset-applied) timestamp, in the local civil
// calendar, at which this rule's transition occurs in the given year.
func (d dayRule) epoch(year int) int64 {
	switch d.kind {
	case dayJulian:
		doy := d.julianDay - 1
		if doy >= 59 && civil.IsLeap(year) {
			doy++
		}
		return civil.FromYearDay(year, doy, d.hour, d.minute, d.second)
	case dayCalendar:
		return d.calendarEpoch(year)
	default: // dayOfYear
		return civil.FromYearDay(year, d.yearDay, d.hour, d.minute, d.second)
	}
}

func (d dayRule) calendarEpoch(year int) int64 {
	firstWeekday := civil.WeekdayOfFirst(year, d.month)
	daysInMonth := civil.DaysInMonth(year, d.month)

	monthDay := floorMod(d.weekday-firstWeekday, 7) + 1
	monthDay += (d.week - 1) * 7
	if monthDay > daysInMonth {
		monthDay -= 7
	}

	return civil.FromDateTime(year, d.month, monthDay, d.hour, d.minute, d.second)
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
