package controllers

import (
	"errors"
	"net/http"

	"daily-diet/middlewares"
	"daily-diet/services"
	"daily-diet/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users       *services.UserService
	TokenSecret []byte
}

func NewUserController(users *services.UserService, tokenSecret []byte) *UserController {
	return &UserController{Users: users, TokenSecret: tokenSecret}
}

type registerInput struct {
	Username string `json:"username" binding:"required"`
}

// Register creates a user and issues the identity cookie the client presents
// on every meal request.
func (h *UserController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), input.Username)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateIdentityToken(user.ID, h.TokenSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(middlewares.IdentityCookieName, token, int(utils.IdentityTokenTTL.Seconds()), "/", "", false, true)
	c.Status(http.StatusCreated)
}
