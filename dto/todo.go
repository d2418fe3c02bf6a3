package dto

import (
	"main/model"
	"time"
)

type TodoResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	Priority     model.Priority        `json:"priority"`
	DueDate      *time.Time            `json:"due_date,omitempty"`
	TimeEstimate string                `json:"time_estimate,omitempty"`
	Tags         []string              `json:"tags,omitempty"`
	Checklist    []model.ChecklistItem `json:"checklist,omitempty"`
	Status       model.TodoStatus      `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	TimeUntilDue string                `json:"time_until_due,omitempty"`
}

func ToTodoResponse(todo *model.Todo) TodoResponse {
	response := TodoResponse{
		ID:           todo.TodoID,
		Title:        todo.Title,
		Description:  todo.Description,
		Priority:     todo.Priority,
		TimeEstimate: todo.TimeEstimate,
		Tags:         todo.Tags,
		Checklist:    todo.Checklist,
		Status:       todo.Status,
		CreatedAt:    todo.CreatedAt,
		UpdatedAt:    todo.UpdatedAt,
	}

	if !todo.DueDate.IsZero() {
		response.DueDate = &todo.DueDate
		if todo.Status == model.TodoActive {
			if todo.DueDate.Before(time.Now()) {
				response.TimeUntilDue = "Overdue"
			} else {
				response.TimeUntilDue = time.Until(todo.DueDate).Round(time.Hour).String()
			}
		}
	}
	return response
}

func ToTodoResponses(todos []*model.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, ToTodoResponse(todo))
	}
	return responses
}
