package resource

import (
	"testing"
	"time"
)

func TestDaysUntil(t *testing.T) {
	today := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"ten days ahead", today.AddDate(0, 0, 10), 10},
		{"five days past", today.AddDate(0, 0, -5), -5},
		{"same day", today, 0},
		{"time of day ignored", time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC), 1},
		{"across month boundary", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 3},
	}
	for _, tc := range cases {
		if got := DaysUntil(today, tc.end); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestDaysUntilIgnoresDSTOffsets(t *testing.T) {
	zone := time.FixedZone("BST", 3600)
	today := time.Date(2026, 3, 28, 22, 0, 0, 0, zone)
	end := time.Date(2026, 4, 7, 1, 0, 0, 0, zone)
	if got := DaysUntil(today, end); got != 10 {
		t.Fatalf("expected exactly 10 days, got %d", got)
	}
}

func TestApplyCountdownStampsAndOverwrites(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	future := today.AddDate(0, 0, 10)
	past := today.AddDate(0, 0, -5)
	stale := 999

	records := []Record{
		{ResourceEndDate: &future, CountdownDays: &stale},
		{ResourceEndDate: &past},
		{ResourceEndDate: nil, CountdownDays: &stale},
	}
	ApplyCountdown(records, today)

	if records[0].CountdownDays == nil || *records[0].CountdownDays != 10 {
		t.Fatalf("stale countdown must be recomputed, got %v", records[0].CountdownDays)
	}
	if records[1].CountdownDays == nil || *records[1].CountdownDays != -5 {
		t.Fatalf("expected -5 for past date, got %v", records[1].CountdownDays)
	}
	if records[2].CountdownDays != nil {
		t.Fatalf("nil end date must clear countdown, got %v", *records[2].CountdownDays)
	}
}
