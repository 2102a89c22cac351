package entities

import (
	"testing"
	"time"
)

func TestAddCalendarMonths(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"same day of month", day(2025, time.January, 15), 6, day(2025, time.July, 15)},
		{"crosses year", day(2025, time.October, 10), 3, day(2026, time.January, 10)},
		{"clamps to february", day(2025, time.August, 31), 6, day(2026, time.February, 28)},
		{"clamps to leap february", day(2023, time.August, 31), 6, day(2024, time.February, 29)},
		{"clamps to thirty day month", day(2025, time.January, 31), 3, day(2025, time.April, 30)},
		{"twelve months", day(2024, time.February, 29), 12, day(2025, time.February, 28)},
		{"zero months", day(2025, time.March, 3), 0, day(2025, time.March, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AddCalendarMonths(tc.start, tc.months)
			if !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want.Format(time.DateOnly), got.Format(time.DateOnly))
			}
		})
	}
}

func TestServiceDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	got := ServiceDay(time.Date(2025, time.May, 1, 22, 30, 0, 0, loc))
	want := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
