package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	service *usecase.GoalsService
}

func NewGoalsHandler(service *usecase.GoalsService) *GoalsHandler {
	return &GoalsHandler{service: service}
}

func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string             `json:"title" binding:"required"`
		Description string             `json:"description"`
		Timeframe   string             `json:"timeframe"`
		Priority    model.Priority     `json:"priority"`
		LinkedGoals []model.LinkedGoal `json:"linked_goals"`
		Tags        []string           `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	goal := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Timeframe:   req.Timeframe,
		Priority:    req.Priority,
		LinkedGoals: req.LinkedGoals,
		Tags:        req.Tags,
	}
	if err := h.service.CreateGoal(c.Request.Context(), goal); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToGoalResponse(goal))
}

func (h *GoalsHandler) GetUserGoals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goals, err := h.service.GetUserGoals(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch goals")
		return
	}
	utils.Success(c, gin.H{"goals": dto.ToGoalResponses(goals)})
}

func (h *GoalsHandler) GetGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	goal, err := h.service.GetGoal(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToGoalResponse(goal))
}

func (h *GoalsHandler) UpdateGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var updates model.Goal
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	goal, err := h.service.UpdateGoal(c.Request.Context(), c.Param("id"), userID, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToGoalResponse(goal))
}

// SetProgress moves the goal's progress bar. 100 completes the goal.
func (h *GoalsHandler) SetProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Progress *int `json:"progress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.SetProgress(c.Request.Context(), c.Param("id"), userID, *req.Progress); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Goal progress updated"})
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Goal deleted"})
}
