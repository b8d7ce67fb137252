package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/session"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
	"bakery_frontdesk/pkg/validator"
)

type loginRequest struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login forwards credentials to the upstream /login endpoint and, on success,
// stores the returned user and token in the cookie session.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide phone and password"})
		return
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.Message(errs)})
		return
	}

	resp, err := upstream.Default.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	if err := session.Set(c, resp.User, resp.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": resp.Message,
		"user":    resp.User,
	})
}

// Logout clears the session.
func Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the logged-in identity; the front-end uses it to pick the
// navigation for the user's role.
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}
