package model

import "testing"

func TestDefaultHitLevelsMatchDefaultMaxHits(t *testing.T) {
	levels := DefaultHitLevels()

	if len(levels) != DefaultMaxHits {
		t.Fatalf("got %d default hit levels, want %d", len(levels), DefaultMaxHits)
	}
	for i, level := range levels {
		if level.Hits != i+1 {
			t.Errorf("level %d has hits %d, want %d", i, level.Hits, i+1)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	for _, day := range Weekdays {
		if !IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = false, want true", day)
		}
	}
	for _, bad := range []string{"Monday", "mon", "Funday", ""} {
		if IsValidWeekday(bad) {
			t.Errorf("IsValidWeekday(%q) = true, want false", bad)
		}
	}
}
