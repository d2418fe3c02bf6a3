package usecase

import (
	"testing"
	"time"
)

func TestNextMidnightUTC(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"mid afternoon",
			time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC),
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"just after midnight waits a full day",
			time.Date(2025, 3, 14, 0, 0, 1, 0, time.UTC),
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"exactly midnight schedules the next one",
			time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"month boundary",
			time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"non-UTC input resolves against the UTC day",
			time.Date(2025, 3, 14, 22, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextMidnightUTC(tt.now); !got.Equal(tt.want) {
				t.Errorf("NextMidnightUTC(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
