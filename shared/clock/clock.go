// Package clock holds wall-clock arithmetic for studio-local schedules.
//
// A TimeOfDay is a count of minutes since local midnight. The value 24:00 is
// allowed so that a day can be closed with a half-open interval [x, 24:00).
// Arithmetic never wraps across midnight; callers get ErrCrossesMidnight instead.
package clock

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour

	DateLayout = "2006-01-02"
)

var (
	ErrCrossesMidnight = errors.New("time arithmetic crosses midnight")
	ErrInvalidTime     = errors.New("invalid time of day, expected HH:MM")
)

// InvalidRangeError reports an interval whose end is not after its start.
type InvalidRangeError struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range: end %s must be after start %s", e.End, e.Start)
}

type TimeOfDay int

const (
	Midnight TimeOfDay = 0
	EndOfDay TimeOfDay = MinutesPerDay
)

// New builds a TimeOfDay from hour and minute, rejecting anything outside 00:00..24:00.
func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute >= MinutesPerHour {
		return 0, ErrInvalidTime
	}

	t := TimeOfDay(hour*MinutesPerHour + minute)
	if !t.Valid() {
		return 0, ErrInvalidTime
	}

	return t, nil
}

// MustParse is for constants and tests.
func MustParse(value string) TimeOfDay {
	t, err := ParseTimeOfDay(value)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseTimeOfDay accepts HH:MM and HH:MM:SS (seconds must be zero, as Postgres renders time columns).
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, ErrInvalidTime
	}

	if len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidTime
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidTime
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidTime
	}

	if len(parts) == 3 {
		seconds, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || seconds != 0 {
			return 0, ErrInvalidTime
		}
	}

	return New(hour, minute)
}

func (t TimeOfDay) Valid() bool {
	return t >= Midnight && t <= EndOfDay
}

func (t TimeOfDay) Hour() int {
	return int(t) / MinutesPerHour
}

func (t TimeOfDay) Minute() int {
	return int(t) % MinutesPerHour
}

// Minutes returns the minutes elapsed since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// On places the time of day on the given civil date in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(t) * time.Minute)
}

// AddMinutes shifts t by minutes. The result must stay within the same day.
func AddMinutes(t TimeOfDay, minutes int) (TimeOfDay, error) {
	res := t + TimeOfDay(minutes)
	if !t.Valid() || !res.Valid() {
		return 0, fmt.Errorf("%s %+d minutes: %w", t, minutes, ErrCrossesMidnight)
	}

	return res, nil
}

// DurationMinutes returns end - start. The range must be non-empty.
func DurationMinutes(start, end TimeOfDay) (int, error) {
	if end <= start {
		return 0, &InvalidRangeError{Start: start, End: end}
	}

	return int(end - start), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode time of day: %w", err)
	}

	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Value renders the Postgres time literal. 24:00:00 is a valid Postgres time.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDay(v.Hour()*MinutesPerHour + v.Minute())
		// lib/pq decodes 24:00:00 as midnight of the following day.
		if v.Hour() == 0 && v.Minute() == 0 && v.Day() > 1 {
			*t = EndOfDay
		}

		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(value string) error {
	if idx := strings.IndexAny(value, ".+"); idx > 0 {
		value = value[:idx]
	}

	parsed, err := ParseTimeOfDay(value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// NullTimeOfDay is a TimeOfDay that may be NULL in storage.
type NullTimeOfDay struct {
	Time  TimeOfDay
	Valid bool
}

func NewNullTimeOfDay(t *TimeOfDay) NullTimeOfDay {
	if t == nil {
		return NullTimeOfDay{}
	}

	return NullTimeOfDay{Time: *t, Valid: true}
}

func (n NullTimeOfDay) Ptr() *TimeOfDay {
	if !n.Valid {
		return nil
	}

	t := n.Time

	return &t
}

func (n NullTimeOfDay) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}

	return n.Time.Value()
}

func (n *NullTimeOfDay) Scan(src any) error {
	if src == nil {
		n.Time, n.Valid = 0, false

		return nil
	}

	n.Valid = true

	return n.Time.Scan(src)
}

func (n NullTimeOfDay) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return n.Time.MarshalJSON()
}

func (n *NullTimeOfDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Time, n.Valid = 0, false

		return nil
	}

	n.Valid = true

	return n.Time.UnmarshalJSON(data)
}
