//go:build unit

package availability_test

import (
	"encoding/json"
	"testing"
	"time"

	"booking-portal/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload(t *testing.T) {
	t.Run("regular rule never carries a date", func(t *testing.T) {
		p, err := availability.NewPayload(availability.RuleTypeRegular, "monday", "2025-06-01", "09:00", "17:00", true)
		require.NoError(t, err)
		require.NotNil(t, p.DayOfWeek)
		assert.Equal(t, availability.Monday, *p.DayOfWeek)
		assert.Nil(t, p.SpecificDate)

		body, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"REGULAR","day_of_week":"MONDAY","specific_date":null,"start_time":"09:00","end_time":"17:00","is_available":true}`, string(body))
	})

	t.Run("exception rule never carries a weekday", func(t *testing.T) {
		p, err := availability.NewPayload(availability.RuleTypeException, "MONDAY", "2025-06-01", "10:00:00", "12:30", false)
		require.NoError(t, err)
		assert.Nil(t, p.DayOfWeek)
		require.NotNil(t, p.SpecificDate)
		assert.Equal(t, "2025-06-01", *p.SpecificDate)
		assert.Equal(t, "10:00", p.StartTime)
		assert.False(t, p.IsAvailable)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name       string
			typ        availability.RuleType
			day, date  string
			start, end string
			errIs      error
		}{
			{name: "unknown day", typ: availability.RuleTypeRegular, day: "FUNDAY", start: "09:00", end: "10:00", errIs: availability.ErrInvalidDayOfWeek},
			{name: "bad date", typ: availability.RuleTypeException, date: "01/06/2025", start: "09:00", end: "10:00", errIs: availability.ErrInvalidDate},
			{name: "bad time", typ: availability.RuleTypeRegular, day: "MONDAY", start: "9am", end: "10:00", errIs: availability.ErrInvalidTime},
			{name: "inverted range", typ: availability.RuleTypeRegular, day: "MONDAY", start: "17:00", end: "09:00", errIs: availability.ErrInvalidTimeRange},
			{name: "empty range", typ: availability.RuleTypeRegular, day: "MONDAY", start: "09:00", end: "09:00", errIs: availability.ErrInvalidTimeRange},
			{name: "unknown type", typ: availability.RuleType("WEEKLY"), start: "09:00", end: "10:00", errIs: availability.ErrInvalidRuleType},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := availability.NewPayload(tc.typ, tc.day, tc.date, tc.start, tc.end, true)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestRule(t *testing.T) {
	day := availability.Friday
	date := "2025-12-31"

	regular := availability.Rule{ID: uuid.New(), Type: availability.RuleTypeRegular, DayOfWeek: &day, StartTime: "09:00:00", EndTime: "17:00:00"}
	exception := availability.Rule{ID: uuid.New(), Type: availability.RuleTypeException, SpecificDate: &date, StartTime: "10:00", EndTime: "11:00"}

	assert.Equal(t, "FRIDAY", regular.Label())
	assert.Equal(t, "09:00 - 17:00", regular.Window())
	assert.Equal(t, "2025-12-31", exception.Label())
	assert.Equal(t, time.Friday, day.Weekday())

	rules := []availability.Rule{regular, exception}
	left := availability.Without(rules, regular.ID)
	require.Len(t, left, 1)
	assert.Equal(t, exception.ID, left[0].ID)
	assert.Len(t, rules, 2)

	typ, err := availability.NewRuleType("exception")
	require.NoError(t, err)
	assert.Equal(t, availability.RuleTypeException, typ)
}
