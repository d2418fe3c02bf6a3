package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CoinsHandler struct {
	service *usecase.RewardsService
}

func NewCoinsHandler(service *usecase.RewardsService) *CoinsHandler {
	return &CoinsHandler{service: service}
}

// GetBalance returns the user's coin total and level, initializing the
// balance at zero on first sight.
func (h *CoinsHandler) GetBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch coin balance")
		return
	}
	utils.Success(c, dto.ToCoinBalanceResponse(balance))
}

func (h *CoinsHandler) GetTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	transactions, err := h.service.GetTransactions(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch transactions")
		return
	}
	utils.Success(c, gin.H{"transactions": dto.ToCoinTransactionResponses(transactions)})
}
