package clock_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon/shared/clock"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    clock.TimeOfDay
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: 540},
		{name: "with seconds", input: "13:45:00", want: 825},
		{name: "midnight", input: "00:00", want: clock.Midnight},
		{name: "end of day", input: "24:00", want: clock.EndOfDay},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "non zero seconds", input: "10:00:30", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, clock.ErrInvalidTime)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
		wantErr bool
	}{
		{name: "haircut end time", start: "09:00", minutes: 60, want: "10:00"},
		{name: "crosses hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "negative", start: "09:15", minutes: -15, want: "09:00"},
		{name: "lands on end of day", start: "23:30", minutes: 30, want: "24:00"},
		{name: "crosses midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "before midnight", start: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.AddMinutes(clock.MustParse(tt.start), tt.minutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, clock.ErrCrossesMidnight)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	got, err := clock.DurationMinutes(clock.MustParse("09:00"), clock.MustParse("10:30"))
	require.NoError(t, err)
	assert.Equal(t, 90, got)

	for _, pair := range [][2]string{{"10:00", "10:00"}, {"11:00", "10:00"}} {
		_, err := clock.DurationMinutes(clock.MustParse(pair[0]), clock.MustParse(pair[1]))

		var rangeErr *clock.InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, pair[0], rangeErr.Start.String())
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	payload := struct {
		Start clock.TimeOfDay     `json:"start"`
		End   clock.NullTimeOfDay `json:"end"`
	}{Start: clock.MustParse("08:05")}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:05","end":null}`, string(raw))

	err = json.Unmarshal([]byte(`{"start":"17:30","end":"18:00"}`), &payload)
	require.NoError(t, err)
	assert.Equal(t, "17:30", payload.Start.String())
	assert.True(t, payload.End.Valid)
	assert.Equal(t, "18:00", payload.End.Time.String())

	err = json.Unmarshal([]byte(`{"start":"25:00"}`), &payload)
	assert.Error(t, err)
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod clock.TimeOfDay

	require.NoError(t, tod.Scan("14:30:00"))
	assert.Equal(t, "14:30", tod.String())

	require.NoError(t, tod.Scan([]byte("07:15:00")))
	assert.Equal(t, "07:15", tod.String())

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, "16:45", tod.String())

	require.NoError(t, tod.Scan(time.Date(0, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, clock.EndOfDay, tod)

	assert.Error(t, tod.Scan(42))

	value, err := clock.MustParse("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", value)

	var null clock.NullTimeOfDay
	require.NoError(t, null.Scan(nil))
	assert.False(t, null.Valid)
	assert.Nil(t, null.Ptr())
}

func TestDates(t *testing.T) {
	from := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)

	dates := clock.Dates(from, to)
	require.Len(t, dates, 4)
	assert.Equal(t, "2025-08-30", clock.FormatDate(dates[0]))
	assert.Equal(t, "2025-09-02", clock.FormatDate(dates[3]))
	assert.Equal(t, 4, clock.DaysBetween(from, to))
	assert.Empty(t, clock.Dates(to, from))

	date, err := clock.ParseDate("2025-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, date.Weekday())

	_, err = clock.ParseDate("01/09/2025")
	assert.Error(t, err)
}
