package handler

import (
	"context"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	startedAt   time.Time
}

func NewHealthHandler(mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient, startedAt: time.Now()}
}

// Health reports process liveness plus database reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	dbStatus := "connected"

	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.mongoClient.Ping(pingCtx, readpref.Primary()); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	utils.Success(c, gin.H{
		"status":    status,
		"database":  dbStatus,
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"cpu_usage": utils.GetCPUUsage(),
	})
}
