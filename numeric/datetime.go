package numeric

import (
	"fmt"
	"time"
)

// Precision distinguishes a DateTime that carries only a calendar day from
// one that carries a time-of-day down to microseconds.
type Precision int

const (
	DayPrecision Precision = iota
	MicrosecondPrecision
)

// DateTime is a date and optional time-of-day with a UTC offset. The
// datetime parser grammar itself is out of scope (spec.md §1 Non-goals);
// DateTimeParser below is the contract a full grammar would satisfy.
type DateTime struct {
	T         time.Time
	Precision Precision
	HasOffset bool
}

func (d DateTime) String() string {
	if d.Precision == DayPrecision {
		return d.T.Format("2006-01-02")
	}
	layout := "2006-01-02T15:04:05.000000"
	if d.HasOffset {
		layout += "Z07:00"
	}
	return d.T.Format(layout)
}

// DateTimeParser is the contract the full grammar (out of scope) would
// implement; fifi-core ships one minimal implementation sufficient for
// datetime_rel's tests.
type DateTimeParser interface {
	Parse(s string) (DateTime, error)
}

// ISO8601Parser accepts a strict subset of ISO-8601: "2006-01-02",
// RFC 3339 with a UTC offset ("2006-01-02T15:04:05Z07:00"), or
// "2006-01-02T15:04:05" without one.
type ISO8601Parser struct{}

func (ISO8601Parser) Parse(s string) (DateTime, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return DateTime{T: t, Precision: DayPrecision}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateTime{T: t, Precision: MicrosecondPrecision, HasOffset: true}, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return DateTime{T: t, Precision: MicrosecondPrecision}, nil
	}
	return DateTime{}, fmt.Errorf("datetime: cannot parse %q", s)
}

// AddDuration implements datetime_rel's arithmetic: add a signed duration,
// widening Precision to microsecond if the duration is not a whole day.
func (d DateTime) AddDuration(delta time.Duration) DateTime {
	t := d.T.Add(delta)
	prec := d.Precision
	if delta%(24*time.Hour) != 0 {
		prec = MicrosecondPrecision
	}
	return DateTime{T: t, Precision: prec, HasOffset: d.HasOffset}
}

// Sub returns the duration between two DateTimes (d - other).
func (d DateTime) Sub(other DateTime) time.Duration {
	return d.T.Sub(other.T)
}
