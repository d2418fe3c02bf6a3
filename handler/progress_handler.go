package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	service *usecase.ProgressService
}

func NewProgressHandler(service *usecase.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// GetProgress returns today's derived completion snapshot for the user.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	snapshot, err := h.service.GetUserProgress(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to compute progress")
		return
	}
	utils.Success(c, snapshot)
}
