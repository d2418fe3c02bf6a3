package dto

import (
	"main/model"
	"time"
)

type DailyResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	Priority     model.Priority        `json:"priority"`
	Days         []string              `json:"days"`
	Duration     string                `json:"duration,omitempty"`
	Tags         []string              `json:"tags,omitempty"`
	Note         string                `json:"note,omitempty"`
	Checklist    []model.ChecklistItem `json:"checklist,omitempty"`
	Status       model.DailyStatus     `json:"status"`
	SnoozeUntil  *time.Time            `json:"snooze_until,omitempty"`
	SnoozeReason string                `json:"snooze_reason,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	// DueToday reports whether the schedule includes the current UTC weekday.
	DueToday bool `json:"due_today"`
}

func ToDailyResponse(daily *model.Daily) DailyResponse {
	response := DailyResponse{
		ID:           daily.DailyID,
		Title:        daily.Title,
		Description:  daily.Description,
		Priority:     daily.Priority,
		Days:         daily.Days,
		Duration:     daily.Duration,
		Tags:         daily.Tags,
		Note:         daily.Note,
		Checklist:    daily.Checklist,
		Status:       daily.Status,
		SnoozeReason: daily.SnoozeReason,
		CreatedAt:    daily.CreatedAt,
		UpdatedAt:    daily.UpdatedAt,
	}

	if !daily.SnoozeUntil.IsZero() {
		response.SnoozeUntil = &daily.SnoozeUntil
	}

	today := time.Now().UTC().Format("Mon")
	for _, day := range daily.Days {
		if day == today {
			response.DueToday = true
			break
		}
	}
	return response
}

func ToDailyResponses(dailies []*model.Daily) []DailyResponse {
	responses := make([]DailyResponse, 0, len(dailies))
	for _, daily := range dailies {
		responses = append(responses, ToDailyResponse(daily))
	}
	return responses
}
