package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
	"bakery_frontdesk/pkg/validator"
)

type userRequest struct {
	Name     string      `json:"name" validate:"required,person_name"`
	Role     models.Role `json:"role" validate:"required,oneof=Admin manager user"`
	Phone    string      `json:"phone" validate:"required,phone"`
	Address  string      `json:"address" validate:"required"`
	Password string      `json:"password" validate:"omitempty,min=6"`
}

// GetUsers lists all users, filtered in the gateway when ?q= is present.
func GetUsers(c *gin.Context) {
	users, err := upstream.Default.ListUsers(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	users = search.Filter(users, c.Query("q"), func(u models.User) []string {
		return []string{u.Name, string(u.Role), u.Phone, u.Address}
	})

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser registers a new user.
func CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password is required"})
		return
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.Message(errs)})
		return
	}

	created, err := upstream.Default.CreateUser(c.Request.Context(), middleware.Token(c), models.User{
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": created})
}

// UpdateUser updates an existing user.
func UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": validator.Message(errs)})
		return
	}

	updated, err := upstream.Default.UpdateUser(c.Request.Context(), middleware.Token(c), id, models.User{
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": updated})
}

// DeleteUser deletes a user. Repeating the delete for an id that is already
// gone surfaces the upstream not-found as a 404.
func DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteUser(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
