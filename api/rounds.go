package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (c *SharedController) pageSize() int {
	if c.Env.PageSize == 0 {
		return 10
	}
	return int(c.Env.PageSize)
}

func (c *SharedController) GetRounds(context *gin.Context) {
	gameName := context.Param("gameName")

	rounds, err := c.Db.RecentRounds(gameName, c.pageSize())
	if err != nil {
		slog.Error("Error listing rounds", "game", gameName, "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error listing rounds")
		return
	}

	okResponse(context, rounds)
}

func (c *SharedController) GetUserRounds(context *gin.Context) {
	offset := 0
	if strOffset := context.Query("offset"); strOffset != "" {
		parsed, err := strconv.Atoi(strOffset)
		if err != nil || parsed < 0 {
			errorResponse(context, http.StatusBadRequest, "bad offset")
			return
		}
		offset = parsed
	}

	userID, err := strconv.Atoi(context.Param("userID"))
	if err != nil {
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	rounds, err := c.Db.UserRounds(uint(userID), c.pageSize(), offset)
	if err != nil {
		slog.Error("Error listing user rounds", "userId", userID, "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error listing rounds")
		return
	}

	okResponse(context, rounds)
}

func RoundsEndpoints(sCtrl *SharedController, router *gin.Engine) {
	router.GET("/rounds/list/:gameName", sCtrl.GetRounds)
	router.GET("/rounds/list", sCtrl.GetRounds)
	router.GET("/rounds/user/:userID", sCtrl.GetUserRounds)
}
