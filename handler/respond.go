package handler

import (
	"context"
	"errors"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondError maps a service or repository failure onto the right HTTP
// status: 404 for missing ids, 409 for state conflicts, 500 for database
// trouble, 400 for everything else (the services return plain validation
// errors).
func respondError(c *gin.Context, err error) {
	var srvErr mongo.ServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, repository.ErrMaxHitsReached),
		errors.Is(err, repository.ErrMinHitsReached),
		errors.Is(err, repository.ErrAlreadyCompleted):
		utils.Conflict(c, err.Error())
	case errors.As(err, &srvErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected):
		utils.InternalError(c, "Storage operation failed")
	default:
		utils.BadRequest(c, err.Error())
	}
}

// requireUserID pulls the authenticated user out of the context set by the
// auth middleware.
func requireUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return "", false
	}
	return userID.(string), true
}
