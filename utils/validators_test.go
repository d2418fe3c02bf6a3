package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestTimeformatRule(t *testing.T) {
	v := validator.New()
	RegisterCustomValidators(v)

	type block struct {
		StartTime string `validate:"timeformat"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"morning time", "09:30", false},
		{"single digit hour", "9:30", false},
		{"midnight", "00:00", false},
		{"last minute of the day", "23:59", false},
		{"hour out of range", "24:00", true},
		{"minute out of range", "10:60", true},
		{"am/pm format rejected", "9am", true},
		{"missing minutes", "10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(block{StartTime: tt.value})
			if (err != nil) != tt.wantErr {
				t.Errorf("timeformat(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestWeekdayRule(t *testing.T) {
	v := validator.New()
	RegisterCustomValidators(v)

	type schedule struct {
		Days []string `validate:"dive,weekday"`
	}

	if err := v.Struct(schedule{Days: []string{"Mon", "Wed", "Fri"}}); err != nil {
		t.Errorf("valid weekdays rejected: %v", err)
	}
	if err := v.Struct(schedule{Days: []string{"Mon", "Funday"}}); err == nil {
		t.Error("expected an error for an unknown weekday label")
	}
}
