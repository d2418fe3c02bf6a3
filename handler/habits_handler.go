package handler

import (
	"errors"
	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type HabitsHandler struct {
	service *usecase.HabitsService
}

func NewHabitsHandler(service *usecase.HabitsService) *HabitsHandler {
	return &HabitsHandler{service: service}
}

func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string           `json:"title" binding:"required"`
		Description string           `json:"description"`
		Difficulty  model.Difficulty `json:"difficulty"`
		MaxHits     int              `json:"max_hits"`
		HitLevels   []model.HitLevel `json:"hit_levels"`
		Tags        []string         `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit := &model.Habit{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		MaxHits:     req.MaxHits,
		HitLevels:   req.HitLevels,
		Tags:        req.Tags,
	}
	if err := h.service.CreateHabit(c.Request.Context(), habit); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToHabitResponse(habit))
}

func (h *HabitsHandler) GetUserHabits(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	habits, err := h.service.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}
	utils.Success(c, gin.H{"habits": dto.ToHabitResponses(habits)})
}

func (h *HabitsHandler) GetHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	habit, err := h.service.GetHabit(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToHabitResponse(habit))
}

func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var updates model.Habit
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit, err := h.service.UpdateHabit(c.Request.Context(), c.Param("id"), userID, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToHabitResponse(habit))
}

// IncrementHit bumps today's hit counter and returns the habit together
// with the coins the hit earned.
func (h *HabitsHandler) IncrementHit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.service.IncrementHit(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{
		"habit":  dto.ToHabitResponse(result.Habit),
		"reward": result.Reward,
	})
}

func (h *HabitsHandler) DecrementHit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.service.DecrementHit(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, repository.ErrMinHitsReached) {
			utils.Conflict(c, "No hits recorded today")
			return
		}
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"habit": dto.ToHabitResponse(result.Habit)})
}

func (h *HabitsHandler) SnoozeHabit(c *gin.Context) {
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

	if err := h.service.SnoozeHabit(c.Request.Context(), c.Param("id"), userID, req.Until, req.Reason); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Habit snoozed"})
}

func (h *HabitsHandler) ResumeHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.ResumeHabit(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Habit resumed"})
}

func (h *HabitsHandler) GetCompletions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	completions, err := h.service.GetCompletions(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"completions": completions})
}

func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteHabit(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Habit deleted"})
}
