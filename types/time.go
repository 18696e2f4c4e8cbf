package types

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/tandemdrive/ocpi-tariffs/ocpierr"
)

const (
	millisPerSecond = 1000
	secondsPerHour  = 3600
	millisPerHour   = millisPerSecond * secondsPerHour
)

// DateTime is a UTC instant.
type DateTime = time.Time

// HoursDecimal is a duration stored as an integer count of milliseconds,
// convertible to/from a decimal number of hours or seconds.
type HoursDecimal struct {
	millis int64
}

// ZeroHours is the additive identity.
func ZeroHours() HoursDecimal {
	return HoursDecimal{}
}

// HoursFromDecimal builds an HoursDecimal from a decimal number of hours,
// returning NumericOverflow if the millisecond count would not fit an
// int64.
func HoursFromDecimal(hours Number) (HoursDecimal, error) {
	millis := hours.Mul(NumberFromInt(millisPerHour))
	v, ok := millis.Int64()
	if !ok {
		return HoursDecimal{}, ocpierr.New(ocpierr.NumericOverflow)
	}
	return HoursDecimal{millis: v}, nil
}

// SecondsFromDecimal builds an HoursDecimal from a decimal number of
// seconds, returning NumericOverflow if the millisecond count would not fit
// an int64.
func SecondsFromDecimal(seconds Number) (HoursDecimal, error) {
	millis := seconds.Mul(NumberFromInt(millisPerSecond))
	v, ok := millis.Int64()
	if !ok {
		return HoursDecimal{}, ocpierr.New(ocpierr.NumericOverflow)
	}
	return HoursDecimal{millis: v}, nil
}

// HoursFromDuration wraps a time.Duration as an HoursDecimal.
func HoursFromDuration(d time.Duration) HoursDecimal {
	return HoursDecimal{millis: d.Milliseconds()}
}

// Duration converts to a time.Duration.
func (h HoursDecimal) Duration() time.Duration {
	return time.Duration(h.millis) * time.Millisecond
}

// AsSecondsDecimal returns the duration as a decimal number of seconds.
func (h HoursDecimal) AsSecondsDecimal() Number {
	return NumberFromInt(h.millis).Div(NumberFromInt(millisPerSecond))
}

// AsHoursDecimal returns the duration as a decimal number of hours.
func (h HoursDecimal) AsHoursDecimal() Number {
	return NumberFromInt(h.millis).Div(NumberFromInt(millisPerHour))
}

// Millis returns the duration's millisecond count.
func (h HoursDecimal) Millis() int64 {
	return h.millis
}

// Add saturates to the maximum representable duration rather than
// overflowing, matching the reference implementation's checked_add with a
// Duration::max_value fallback.
func (h HoursDecimal) Add(rhs HoursDecimal) HoursDecimal {
	sum := h.millis + rhs.millis
	if rhs.millis > 0 && sum < h.millis {
		return HoursDecimal{millis: math.MaxInt64}
	}
	return HoursDecimal{millis: sum}
}

// Sub saturates to zero rather than going negative or overflowing.
func (h HoursDecimal) Sub(rhs HoursDecimal) HoursDecimal {
	diff := h.millis - rhs.millis
	if rhs.millis > 0 && diff > h.millis {
		return HoursDecimal{millis: 0}
	}
	if diff < 0 {
		return HoursDecimal{millis: 0}
	}
	return HoursDecimal{millis: diff}
}

func (h HoursDecimal) Cmp(rhs HoursDecimal) int {
	switch {
	case h.millis < rhs.millis:
		return -1
	case h.millis > rhs.millis:
		return 1
	default:
		return 0
	}
}

// String renders as truncated-seconds HH:MM:SS, matching OCPI display.
func (h HoursDecimal) String() string {
	totalSeconds := h.millis / millisPerSecond
	seconds := totalSeconds % 60
	minutes := (totalSeconds / 60) % 60
	hours := totalSeconds / 3600
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func (h HoursDecimal) MarshalJSON() ([]byte, error) {
	return h.AsHoursDecimal().MarshalJSON()
}

func (h *HoursDecimal) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	v, err := HoursFromDecimal(n)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// SecondsRound is a duration stored as an integer count of seconds;
// negative input is rejected.
type SecondsRound struct {
	seconds int64
}

// SecondsRoundFromInt rejects negative input with NumericOverflow, matching
// the reference implementation's failed u64 conversion on a negative
// second count.
func SecondsRoundFromInt(seconds int64) (SecondsRound, error) {
	if seconds < 0 {
		return SecondsRound{}, ocpierr.New(ocpierr.NumericOverflow)
	}
	return SecondsRound{seconds: seconds}, nil
}

func (s SecondsRound) Seconds() int64 {
	return s.seconds
}

func (s SecondsRound) Duration() time.Duration {
	return time.Duration(s.seconds) * time.Second
}

func (s SecondsRound) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.seconds)
}

func (s *SecondsRound) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := SecondsRoundFromInt(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// LocalDate is a calendar date with no time-of-day or zone, formatted
// YYYY-MM-DD on the wire.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

const localDateLayout = "2006-01-02"

func (d LocalDate) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(localDateLayout)
}

// Before reports whether d is strictly before rhs.
func (d LocalDate) Before(rhs LocalDate) bool {
	return d.toTime().Before(rhs.toTime())
}

func (d LocalDate) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysSinceEpoch returns a strictly increasing integer ordering for d,
// usable as a linter hyperrectangle column.
func (d LocalDate) DaysSinceEpoch() int64 {
	return d.toTime().Unix() / 86400
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *LocalDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(localDateLayout, s)
	if err != nil {
		return err
	}
	d.Year, d.Month, d.Day = t.Date()
	return nil
}

// LocalTime is a 24h wall-clock time of day with no date or zone, formatted
// HH:MM on the wire.
type LocalTime struct {
	Hour   int
	Minute int
}

const localTimeLayout = "15:04"

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SecondsSinceMidnight returns a strictly increasing integer ordering for
// t, usable as a linter hyperrectangle column.
func (t LocalTime) SecondsSinceMidnight() int {
	return t.Hour*3600 + t.Minute*60
}

func (t LocalTime) Before(rhs LocalTime) bool {
	return t.SecondsSinceMidnight() < rhs.SecondsSinceMidnight()
}

func (t LocalTime) BeforeOrEqual(rhs LocalTime) bool {
	return t.SecondsSinceMidnight() <= rhs.SecondsSinceMidnight()
}

func (t LocalTime) AfterOrEqual(rhs LocalTime) bool {
	return t.SecondsSinceMidnight() >= rhs.SecondsSinceMidnight()
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(localTimeLayout, s)
	if err != nil {
		return err
	}
	t.Hour, t.Minute = parsed.Hour(), parsed.Minute()
	return nil
}

// DayOfWeek is Mon...Sun, serialized SCREAMING_SNAKE_CASE per OCPI.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekday converts to the standard library's time.Weekday.
func (d DayOfWeek) Weekday() time.Weekday {
	switch d {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	case Saturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// Pred returns the day before d, wrapping Monday to Sunday.
func (d DayOfWeek) Pred() DayOfWeek {
	if d == Monday {
		return Sunday
	}
	return d - 1
}

// DayOfWeekFromTime converts a time.Weekday to DayOfWeek.
func DayOfWeekFromTime(w time.Weekday) DayOfWeek {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

var dayOfWeekNames = [...]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

func (d DayOfWeek) String() string {
	if int(d) < 0 || int(d) >= len(dayOfWeekNames) {
		return "UNKNOWN"
	}
	return dayOfWeekNames[d]
}

func (d DayOfWeek) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DayOfWeek) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range dayOfWeekNames {
		if name == s {
			*d = DayOfWeek(i)
			return nil
		}
	}
	return fmt.Errorf("types: unknown day of week %q", s)
}
