package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAndEndOfMonth(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)

	tests := []struct {
		name      string
		date      time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			date:      time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.March, 31, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			name:      "leap february",
			date:      time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2028, time.February, 29, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			name:      "december keeps year",
			date:      time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantStart: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.December, 31, 23, 59, 59, 999_000_000, time.UTC),
		},
		{
			name:      "location preserved",
			date:      time.Date(2026, time.June, 10, 8, 0, 0, 0, lagos),
			wantStart: time.Date(2026, time.June, 1, 0, 0, 0, 0, lagos),
			wantEnd:   time.Date(2026, time.June, 30, 23, 59, 59, 999_000_000, lagos),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.wantStart.Equal(StartOfMonth(tt.date)))
			assert.True(t, tt.wantEnd.Equal(EndOfMonth(tt.date)))
			assert.Equal(t, tt.date.Location(), EndOfMonth(tt.date).Location())
		})
	}
}

func TestDayOfFollowingMonth(t *testing.T) {
	assert.Equal(t,
		time.Date(2026, time.April, 21, 0, 0, 0, 0, time.UTC),
		DayOfFollowingMonth(2026, time.March, 21, time.UTC))
	assert.Equal(t,
		time.Date(2027, time.January, 21, 0, 0, 0, 0, time.UTC),
		DayOfFollowingMonth(2026, time.December, 21, time.UTC))
	assert.Equal(t, time.UTC, DayOfFollowingMonth(2026, time.May, 21, nil).Location())
}

func TestQuarterOf(t *testing.T) {
	expected := map[time.Month]int{
		time.January: 1, time.March: 1,
		time.April: 2, time.June: 2,
		time.July: 3, time.September: 3,
		time.October: 4, time.December: 4,
	}
	for month, quarter := range expected {
		assert.Equal(t, quarter, QuarterOf(month), month.String())
	}
}

func TestCeilDays(t *testing.T) {
	base := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		to   time.Time
		want int
	}{
		{"same instant", base, 0},
		{"one millisecond ahead counts as a day", base.Add(time.Millisecond), 1},
		{"exactly one day", base.Add(24 * time.Hour), 1},
		{"one day and a bit", base.Add(25 * time.Hour), 2},
		{"half a day behind", base.Add(-12 * time.Hour), 0},
		{"one and a half days behind", base.Add(-36 * time.Hour), -1},
		{"exactly two days behind", base.Add(-48 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CeilDays(base, tt.to))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"RFC3339 with millis", "2026-03-05T10:15:30.250Z", time.Date(2026, 3, 5, 10, 15, 30, 250_000_000, time.UTC), false},
		{"RFC3339", "2026-03-05T10:15:30Z", time.Date(2026, 3, 5, 10, 15, 30, 0, time.UTC), false},
		{"no zone", "2026-03-05T10:15:30", time.Date(2026, 3, 5, 10, 15, 30, 0, time.UTC), false},
		{"space separated", "2026-03-05 10:15:30", time.Date(2026, 3, 5, 10, 15, 30, 0, time.UTC), false},
		{"date only", " 2026-03-05 ", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "yesterday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	t.Run("offset preserved", func(t *testing.T) {
		got, err := ParseTimestamp("2026-03-31T23:30:00+01:00")
		require.NoError(t, err)
		_, offset := got.Zone()
		assert.Equal(t, 3600, offset)
		assert.Equal(t, time.March, got.Month())
	})
}

func TestFormatting(t *testing.T) {
	date := time.Date(2026, time.April, 21, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-04-21", ToISODate(date))
	assert.Equal(t, "April 21, 2026", ToLongDate(date))
	assert.Equal(t, "", ToLongDate(time.Time{}))
	assert.Equal(t, "2026-04-21T00:00:00.000Z", FormatTimestamp(date))
}

func TestParseYearMonth(t *testing.T) {
	year, month, err := ParseYearMonth(" 2026-12 ")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.December, month)

	for _, bad := range []string{"", "2026-13", "2026/03", "March 2026"} {
		_, _, err := ParseYearMonth(bad)
		assert.Error(t, err, bad)
	}
}
