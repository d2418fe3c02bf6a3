package dto

import (
	"main/model"
	"time"
)

type TimeBlockResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Date        string              `json:"date"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	Duration    int                 `json:"duration"`
	Type        model.TimeBlockType `json:"type"`
	ReferenceID string              `json:"reference_id,omitempty"`
	Color       string              `json:"color,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func ToTimeBlockResponse(block *model.TimeBlock) TimeBlockResponse {
	return TimeBlockResponse{
		ID:          block.BlockID,
		Title:       block.Title,
		Date:        block.Date,
		StartTime:   block.StartTime,
		EndTime:     block.EndTime,
		Duration:    block.Duration,
		Type:        block.Type,
		ReferenceID: block.ReferenceID,
		Color:       block.Color,
		CreatedAt:   block.CreatedAt,
		UpdatedAt:   block.UpdatedAt,
	}
}

func ToTimeBlockResponses(blocks []*model.TimeBlock) []TimeBlockResponse {
	responses := make([]TimeBlockResponse, 0, len(blocks))
	for _, block := range blocks {
		responses = append(responses, ToTimeBlockResponse(block))
	}
	return responses
}
