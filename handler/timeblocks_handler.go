package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TimeBlocksHandler struct {
	service *usecase.TimeBlocksService
}

func NewTimeBlocksHandler(service *usecase.TimeBlocksService) *TimeBlocksHandler {
	return &TimeBlocksHandler{service: service}
}

func (h *TimeBlocksHandler) CreateTimeBlock(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string              `json:"title" binding:"required"`
		Date        string              `json:"date" binding:"required"`
		StartTime   string              `json:"start_time" binding:"required,timeformat"`
		EndTime     string              `json:"end_time" binding:"required,timeformat"`
		Type        model.TimeBlockType `json:"type"`
		ReferenceID string              `json:"reference_id"`
		Color       string              `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	block := &model.TimeBlock{
		UserID:      userID,
		Title:       req.Title,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Type:        req.Type,
		ReferenceID: req.ReferenceID,
		Color:       req.Color,
	}
	if err := h.service.CreateTimeBlock(c.Request.Context(), block); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToTimeBlockResponse(block))
}

// GetUserTimeBlocks lists the user's blocks, optionally limited to a single
// date with the ?date=YYYY-MM-DD query parameter.
func (h *TimeBlocksHandler) GetUserTimeBlocks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	blocks, err := h.service.GetUserTimeBlocks(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch time blocks")
		return
	}
	utils.Success(c, gin.H{"time_blocks": dto.ToTimeBlockResponses(blocks)})
}

func (h *TimeBlocksHandler) GetTimeBlock(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	block, err := h.service.GetTimeBlock(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTimeBlockResponse(block))
}

func (h *TimeBlocksHandler) UpdateTimeBlock(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var updates model.TimeBlock
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	block, err := h.service.UpdateTimeBlock(c.Request.Context(), c.Param("id"), userID, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTimeBlockResponse(block))
}

func (h *TimeBlocksHandler) DeleteTimeBlock(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTimeBlock(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Time block deleted"})
}
