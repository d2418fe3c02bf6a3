package model

import (
	"errors"
	"testing"
)

func TestBlockDuration(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    int
		wantErr bool
	}{
		{"one hour block", "09:00", "10:00", 60, false},
		{"partial hour", "09:15", "09:45", 30, false},
		{"zero length block is allowed", "12:00", "12:00", 0, false},
		{"spans the afternoon", "13:30", "17:00", 210, false},
		{"end before start", "10:00", "09:00", 0, true},
		{"malformed start", "9am", "10:00", 0, true},
		{"hours out of range", "25:00", "26:00", 0, true},
		{"minutes out of range", "10:75", "11:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BlockDuration(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("BlockDuration(%q, %q) expected an error", tt.start, tt.end)
				}
				return
			}
			if err != nil {
				t.Fatalf("BlockDuration(%q, %q) unexpected error: %v", tt.start, tt.end, err)
			}
			if got != tt.want {
				t.Errorf("BlockDuration(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestBlockDurationNegativeSpanError(t *testing.T) {
	_, err := BlockDuration("18:00", "08:00")
	if !errors.Is(err, ErrNegativeTimeSpan) {
		t.Errorf("expected ErrNegativeTimeSpan, got %v", err)
	}
}
