package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

type categoryRequest struct {
	Code         string `json:"code" binding:"required"`
	Description  string `json:"description" binding:"required"`
	CategoryName string `json:"categoryName" binding:"required"`
}

// GetCategories lists product categories.
func GetCategories(c *gin.Context) {
	categories, err := upstream.Default.ListCategories(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	categories = search.Filter(categories, c.Query("q"), func(cat models.Category) []string {
		return []string{cat.Code, cat.CategoryName, cat.Description}
	})

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory creates a product category.
func CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	created, err := upstream.Default.CreateCategory(c.Request.Context(), middleware.Token(c), models.Category{
		Code:         req.Code,
		Description:  req.Description,
		CategoryName: req.CategoryName,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": created})
}

// UpdateCategory updates a category.
func UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	updated, err := upstream.Default.UpdateCategory(c.Request.Context(), middleware.Token(c), id, models.Category{
		Code:         req.Code,
		Description:  req.Description,
		CategoryName: req.CategoryName,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": updated})
}

// DeleteCategory deletes a category.
func DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteCategory(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
