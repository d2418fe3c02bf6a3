package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type TodosHandler struct {
	service *usecase.TodosService
}

func NewTodosHandler(service *usecase.TodosService) *TodosHandler {
	return &TodosHandler{service: service}
}

func (h *TodosHandler) CreateTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title        string                `json:"title" binding:"required"`
		Description  string                `json:"description"`
		Priority     model.Priority        `json:"priority"`
		DueDate      time.Time             `json:"due_date"`
		TimeEstimate string                `json:"time_estimate"`
		Tags         []string              `json:"tags"`
		Checklist    []model.ChecklistItem `json:"checklist"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	todo := &model.Todo{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		TimeEstimate: req.TimeEstimate,
		Tags:         req.Tags,
		Checklist:    req.Checklist,
	}
	if err := h.service.CreateTodo(c.Request.Context(), todo); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToTodoResponse(todo))
}

// GetUserTodos returns the user's todos in display order: active before
// completed, overdue first, then by priority and due date.
func (h *TodosHandler) GetUserTodos(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	todos, err := h.service.GetUserTodos(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch todos")
		return
	}
	utils.Success(c, gin.H{"todos": dto.ToTodoResponses(todos)})
}

func (h *TodosHandler) GetTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	todo, err := h.service.GetTodo(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTodoResponse(todo))
}

func (h *TodosHandler) UpdateTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var updates model.Todo
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	todo, err := h.service.UpdateTodo(c.Request.Context(), c.Param("id"), userID, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTodoResponse(todo))
}

func (h *TodosHandler) CompleteTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.service.CompleteTodo(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{
		"todo":   dto.ToTodoResponse(result.Todo),
		"reward": result.Reward,
	})
}

func (h *TodosHandler) SetChecklistItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	err := h.service.SetChecklistItem(c.Request.Context(), c.Param("id"), userID, c.Param("itemId"), *req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Checklist item updated"})
}

func (h *TodosHandler) DeleteTodo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTodo(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Todo deleted"})
}
