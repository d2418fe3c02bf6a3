package handler

import (
	"context"
	"errors"
	"fmt"
	"main/repository"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing entity", repository.ErrNotFound, http.StatusNotFound},
		{"wrapped missing entity", fmt.Errorf("todo: %w", repository.ErrNotFound), http.StatusNotFound},
		{"hit ceiling", repository.ErrMaxHitsReached, http.StatusConflict},
		{"hit floor", repository.ErrMinHitsReached, http.StatusConflict},
		{"double completion", repository.ErrAlreadyCompleted, http.StatusConflict},
		{"database command failure", mongo.CommandError{Code: 11000, Message: "write failed"}, http.StatusInternalServerError},
		{"database timeout", context.DeadlineExceeded, http.StatusInternalServerError},
		{"disconnected client", mongo.ErrClientDisconnected, http.StatusInternalServerError},
		{"validation failure", errors.New("todo title is required"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
