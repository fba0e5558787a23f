package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gemrush.io/backend/db"
	"gemrush.io/backend/ledger"
	"gemrush.io/backend/requests"
	"gemrush.io/backend/responses"
)

func (c *SharedController) GetUser(context *gin.Context) {
	userId := context.Param("userID")

	var userFull db.User
	if err := c.Db.Where("id = ?", userId).First(&userFull).Error; err != nil {
		slog.Error("User not found", "userId", userId)
		errorResponse(context, http.StatusNotFound, "User not found")
		return
	}

	okResponse(context, responses.User{
		ID:               userFull.ID,
		RegistrationTime: userFull.RegistrationTime,
		Username:         userFull.Username,
	})
}

func (c *SharedController) GetBalance(context *gin.Context) {
	userID, ok := authUserID(context)
	if !ok {
		errorResponse(context, http.StatusUnauthorized, "Unauthorized")
		return
	}

	okResponse(context, responses.Balance{Balance: c.Engine.Balance(userID)})
}

func (c *SharedController) Deposit(context *gin.Context) {
	userID, ok := authUserID(context)
	if !ok {
		errorResponse(context, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var transfer requests.Transfer
	if err := context.BindJSON(&transfer); err != nil {
		slog.Error("Parsing deposit error", "err", err)
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.Engine.Deposit(userID, transfer.Amount); err != nil {
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	okResponse(context, responses.Balance{Balance: c.Engine.Balance(userID)})
}

func (c *SharedController) Withdraw(context *gin.Context) {
	userID, ok := authUserID(context)
	if !ok {
		errorResponse(context, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var transfer requests.Transfer
	if err := context.BindJSON(&transfer); err != nil {
		slog.Error("Parsing withdrawal error", "err", err)
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.Engine.Withdraw(userID, transfer.Amount); err != nil {
		if errors.Is(err, ledger.ErrInsufficientCredits) {
			errorResponse(context, http.StatusPaymentRequired, err.Error())
			return
		}
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	okResponse(context, responses.Balance{Balance: c.Engine.Balance(userID)})
}

func (c *SharedController) GetLatestGames(context *gin.Context) {
	userID, err := strconv.Atoi(context.Param("userID"))
	if err != nil {
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	names, err := c.Db.LatestGames(uint(userID), 10)
	if err != nil {
		slog.Error("Games not found", "userId", userID)
		errorResponse(context, http.StatusInternalServerError, "Error getting latest games")
		return
	}

	okResponse(context, names)
}

func UserEndpoints(sCtrl *SharedController, router *gin.Engine) {
	router.GET("/user/:userID", sCtrl.GetUser)
	router.GET("/user/balance", AuthMiddleware(), sCtrl.GetBalance)
	router.POST("/user/deposit", AuthMiddleware(), sCtrl.Deposit)
	router.POST("/user/withdraw", AuthMiddleware(), sCtrl.Withdraw)
	router.GET("/user/latest/:userID", sCtrl.GetLatestGames)
}
