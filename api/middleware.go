package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gemrush.io/backend/auth"
	"gemrush.io/backend/responses"
)

// errorResponse writes the standard error envelope.
func errorResponse(context *gin.Context, code int, message string) {
	errMsg, _ := json.Marshal(responses.ErrorMessage{Message: message})
	context.IndentedJSON(code,
		responses.JsonResponse[json.RawMessage]{Status: responses.Err, Data: errMsg})
}

func okResponse(context *gin.Context, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		slog.Error("Serialization error", "err", err)
		errorResponse(context, http.StatusInternalServerError, err.Error())
		return
	}
	context.IndentedJSON(http.StatusOK,
		responses.JsonResponse[json.RawMessage]{Status: responses.Ok, Data: data})
}

func Auth(context *gin.Context, secretKey string) (string, error) {
	tokenString := context.GetHeader("Authorization")
	if tokenString == "" {
		slog.Error("No token supplied")
		errorResponse(context, http.StatusUnauthorized, "Token is not present")
		return "", errors.New("unauthorized")
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims, err := auth.VerifyToken(tokenString, []byte(secretKey))
	if err != nil {
		slog.Error("Error verifying token", "err", err)
		errorResponse(context, http.StatusUnauthorized, err.Error())
		return "", errors.New("unauthorized")
	}

	sub, _ := claims.GetSubject()
	return sub, nil
}

func AuthMiddleware() gin.HandlerFunc {
	authSecretKey := os.Getenv("PASSWORD_SALT")
	return func(c *gin.Context) {
		sub, err := Auth(c, authSecretKey)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("sub", sub)
		c.Next()
	}
}

// authUserID reads the authenticated user id the middleware stored.
func authUserID(context *gin.Context) (uint, bool) {
	sub := context.GetString("sub")
	if sub == "" {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		slog.Error("Unable to convert user id", "err", err)
		return 0, false
	}
	return uint(userID), true
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
