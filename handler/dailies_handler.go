package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type DailiesHandler struct {
	service *usecase.DailiesService
}

func NewDailiesHandler(service *usecase.DailiesService) *DailiesHandler {
	return &DailiesHandler{service: service}
}

func (h *DailiesHandler) CreateDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string                `json:"title" binding:"required"`
		Description string                `json:"description"`
		Priority    model.Priority        `json:"priority"`
		Days        []string              `json:"days" binding:"omitempty,dive,weekday"`
		Duration    string                `json:"duration"`
		Tags        []string              `json:"tags"`
		Note        string                `json:"note"`
		Checklist   []model.ChecklistItem `json:"checklist"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	daily := &model.Daily{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Days:        req.Days,
		Duration:    req.Duration,
		Tags:        req.Tags,
		Note:        req.Note,
		Checklist:   req.Checklist,
	}
	if err := h.service.CreateDaily(c.Request.Context(), daily); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToDailyResponse(daily))
}

func (h *DailiesHandler) GetUserDailies(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	dailies, err := h.service.GetUserDailies(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch dailies")
		return
	}
	utils.Success(c, gin.H{"dailies": dto.ToDailyResponses(dailies)})
}

func (h *DailiesHandler) GetDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	daily, err := h.service.GetDaily(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToDailyResponse(daily))
}

func (h *DailiesHandler) UpdateDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var updates model.Daily
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	daily, err := h.service.UpdateDaily(c.Request.Context(), c.Param("id"), userID, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToDailyResponse(daily))
}

// CompleteDaily marks the daily done for today and returns the earned
// reward alongside the updated daily.
func (h *DailiesHandler) CompleteDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.service.CompleteDaily(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{
		"daily":  dto.ToDailyResponse(result.Daily),
		"reward": result.Reward,
	})
}

func (h *DailiesHandler) UncheckDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.UncheckDaily(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Daily unchecked"})
}

func (h *DailiesHandler) SnoozeDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Until  time.Time `json:"until" binding:"required"`
		Reason string    `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.SnoozeDaily(c.Request.Context(), c.Param("id"), userID, req.Until, req.Reason); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Daily snoozed"})
}

func (h *DailiesHandler) ResumeDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.ResumeDaily(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Daily resumed"})
}

func (h *DailiesHandler) SetChecklistItem(c *gin.Context) {
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

func (h *DailiesHandler) DeleteDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDaily(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Daily deleted"})
}
