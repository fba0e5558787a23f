package api

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gemrush.io/backend/auth"
	"gemrush.io/backend/db"
	"gemrush.io/backend/requests"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func (c *SharedController) Login(context *gin.Context) {
	var submittedCredentials requests.Login

	if err := context.BindJSON(&submittedCredentials); err != nil {
		slog.Error("Parsing login data error", "err", err)
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword := auth.HashPassword(submittedCredentials.Password, c.Env.PasswordSalt)

	existingUser, err := c.Db.FindUserByCredentials(submittedCredentials.Login, hashedPassword)
	if err != nil {
		slog.Error("No user found", "err", err)
		errorResponse(context, http.StatusUnauthorized, "Wrong login or password")
		return
	}

	credentials, err := auth.CreateCredentials(
		strconv.FormatUint(uint64(existingUser.ID), 10),
		"local",
		c.Env.RefreshTokenValidity,
		c.Env.RefreshTokenValidity,
		[]byte(c.Env.PasswordSalt))
	if err != nil {
		slog.Error("Error issuing tokens", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error issuing tokens")
		return
	}

	refreshToken := &db.RefreshToken{
		Token:  credentials.RefreshToken,
		UserID: existingUser.ID,
	}
	if err := c.Db.Create(refreshToken).Error; err != nil {
		slog.Error("Error adding refresh token to db", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error creating refresh token")
		return
	}

	okResponse(context, credentials)
}

// refreshTokenUser verifies the token path parameter is a valid
// refresh token and returns the user it belongs to.
func (c *SharedController) refreshTokenUser(context *gin.Context) (string, uint, bool) {
	tokenString := context.Param("token")

	claims, err := auth.VerifyToken(tokenString, []byte(c.Env.PasswordSalt))
	if err != nil {
		slog.Error("Error verifying token", "err", err)
		errorResponse(context, http.StatusUnauthorized, "Could not verify token")
		return "", 0, false
	}

	aud, err := claims.GetAudience()
	if err != nil || len(aud) == 0 {
		slog.Error("Unable to get audience claims", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error getting audience claims")
		return "", 0, false
	}
	if aud[0] != auth.AudienceRefresh {
		slog.Error("Not a refresh token")
		errorResponse(context, http.StatusBadRequest, "Malformed token")
		return "", 0, false
	}

	sub, err := claims.GetSubject()
	if err != nil {
		slog.Error("Unable to get subject", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error getting subject")
		return "", 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		slog.Error("Unable to convert user id", "err", err)
		errorResponse(context, http.StatusBadRequest, "bad user id")
		return "", 0, false
	}

	return tokenString, uint(userID), true
}

func (c *SharedController) Refresh(context *gin.Context) {
	tokenString, userID, ok := c.refreshTokenUser(context)
	if !ok {
		return
	}

	if err := c.Db.RevokeRefreshToken(tokenString, userID); err != nil {
		slog.Error("Could not revoke token", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error revoking token")
		return
	}

	credentials, err := auth.CreateCredentials(
		strconv.FormatUint(uint64(userID), 10),
		"local",
		c.Env.RefreshTokenValidity,
		c.Env.RefreshTokenValidity,
		[]byte(c.Env.PasswordSalt))
	if err != nil {
		slog.Error("Error issuing tokens", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error issuing tokens")
		return
	}

	refreshToken := &db.RefreshToken{
		Token:  credentials.RefreshToken,
		UserID: userID,
	}
	if err := c.Db.Create(refreshToken).Error; err != nil {
		slog.Error("Error adding refresh token to db", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error creating refresh token")
		return
	}

	okResponse(context, credentials)
}

func (c *SharedController) Logout(context *gin.Context) {
	tokenString, userID, ok := c.refreshTokenUser(context)
	if !ok {
		return
	}

	if err := c.Db.RevokeRefreshToken(tokenString, userID); err != nil {
		slog.Error("Could not revoke token", "err", err)
		errorResponse(context, http.StatusInternalServerError, "Error revoking token")
		return
	}

	okResponse(context, "Token has been revoked")
}

func (c *SharedController) Register(context *gin.Context) {
	var submittedCredentials requests.RegisterUser
	if err := context.BindJSON(&submittedCredentials); err != nil {
		slog.Error("Parsing registration data error", "err", err)
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	if submittedCredentials.Username == "" {
		errorResponse(context, http.StatusBadRequest, "username is required")
		return
	}
	if !namePattern.MatchString(submittedCredentials.Username) {
		errorResponse(context, http.StatusBadRequest, "bad username format")
		return
	}
	if submittedCredentials.Login == "" {
		errorResponse(context, http.StatusBadRequest, "login is required")
		return
	}
	if !namePattern.MatchString(submittedCredentials.Login) {
		errorResponse(context, http.StatusBadRequest, "bad login format")
		return
	}
	if submittedCredentials.Password == "" {
		errorResponse(context, http.StatusBadRequest, "password is required")
		return
	}
	if len(submittedCredentials.Password) < 6 {
		errorResponse(context, http.StatusBadRequest, "password is too short")
		return
	}

	hashedPassword := auth.HashPassword(submittedCredentials.Password, c.Env.PasswordSalt)

	user := &db.User{
		Login:    submittedCredentials.Login,
		Username: submittedCredentials.Username,
		Password: hashedPassword,
	}

	err := c.Db.Transaction(func(tx *gorm.DB) error {
		var existingUser db.User
		if err := tx.Where("login = ?", submittedCredentials.Login).First(&existingUser).Error; err == nil {
			slog.Error("User already exists", "Username", submittedCredentials.Username)
			errorResponse(context, http.StatusConflict, "User already exists")
			return gorm.ErrDuplicatedKey
		} else if err != gorm.ErrRecordNotFound {
			errorResponse(context, http.StatusInternalServerError, "Registration error")
			return err
		}

		if err := tx.Create(user).Error; err != nil {
			errorResponse(context, http.StatusInternalServerError, "Registration error")
			return err
		}

		return nil
	})
	if err != nil {
		return
	}

	okResponse(context, "User was created")
}

func AuthEndpoints(sCtrl *SharedController, router *gin.Engine) {
	router.POST("/login", sCtrl.Login)
	router.POST("/register", sCtrl.Register)
	router.GET("/refresh/:token", sCtrl.Refresh)
	router.DELETE("/logout/:token", AuthMiddleware(), sCtrl.Logout)
}
