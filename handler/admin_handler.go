package handler

import (
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reset *usecase.ResetService
}

func NewAdminHandler(reset *usecase.ResetService) *AdminHandler {
	return &AdminHandler{reset: reset}
}

// TriggerReset runs the daily reset on demand. The date lock still applies,
// so triggering twice in one UTC day is a no-op the second time.
func (h *AdminHandler) TriggerReset(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	if err := h.reset.RunDailyReset(c.Request.Context(), time.Now()); err != nil {
		utils.InternalError(c, "Daily reset failed: "+err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Daily reset completed"})
}

// ResetStatus reports when the reset last reached a user, for checking
// whether a support rerun is actually needed.
func (h *AdminHandler) ResetStatus(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	last, err := h.reset.LastReset(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to look up reset state: "+err.Error())
		return
	}

	payload := gin.H{"user_id": c.Param("id")}
	if last.IsZero() {
		payload["last_reset_date"] = nil
	} else {
		payload["last_reset_date"] = last
	}
	utils.Success(c, payload)
}

// ResetUser reruns the reset for a single user, for support recovery after
// a partial run.
func (h *AdminHandler) ResetUser(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	if err := h.reset.ResetUser(c.Request.Context(), c.Param("id"), time.Now()); err != nil {
		utils.InternalError(c, "User reset failed: "+err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "User reset completed"})
}
