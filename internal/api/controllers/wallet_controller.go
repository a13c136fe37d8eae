package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"arcana/internal/models/request_models"
	"arcana/internal/models/response_models"
	"arcana/internal/services"
	"arcana/pkg/utils"
)

type WalletController struct {
	walletService services.WalletServiceInterface
}

func NewWalletController(walletService services.WalletServiceInterface) *WalletController {
	return &WalletController{
		walletService: walletService,
	}
}

// GetBalance godoc
// @Summary Get User Balance
// @Tags Wallet
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wallet/balance [get]
func (w *WalletController) GetBalance(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	balance, err := w.walletService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BalanceResponse{Balance: balance}, "")
}

// Deposit godoc
// @Summary Add Funds
// @Description Charge the configured processor (or mock) and credit the wallet
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body request_models.DepositRequest true "Deposit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wallet/deposit [post]
func (w *WalletController) Deposit(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	amount := decimal.NewFromFloat(req.Amount).Round(2)

	balance, err := w.walletService.Deposit(c.Request.Context(), accountID, amount, req.PaymentMethodID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.DepositResponse{
		Balance: balance,
		Message: "Funds deposited successfully",
	}, "Funds deposited successfully")
}
