package manager

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

type breadRequest struct {
	Name  string           `json:"name" binding:"required"`
	Size  models.BreadSize `json:"size" binding:"required"`
	Price float64          `json:"price" binding:"required,gt=0"`
}

var validBreadSizes = []models.BreadSize{
	models.BreadSizeBal10,
	models.BreadSizeBal15,
	models.BreadSizeBal20,
	models.BreadSizeBal25,
}

func isValidBreadSize(size models.BreadSize) bool {
	for _, s := range validBreadSizes {
		if size == s {
			return true
		}
	}
	return false
}

// GetBread lists bread types.
func GetBread(c *gin.Context) {
	breads, err := upstream.Default.ListBread(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	breads = search.Filter(breads, c.Query("q"), func(b models.Bread) []string {
		return []string{b.Name, string(b.Size)}
	})

	c.JSON(http.StatusOK, gin.H{"bread": breads})
}

// CreateBread creates a bread type.
func CreateBread(c *gin.Context) {
	var req breadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if !isValidBreadSize(req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid bread size"})
		return
	}

	created, err := upstream.Default.CreateBread(c.Request.Context(), middleware.Token(c), models.Bread{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Bread created successfully", "bread": created})
}

// UpdateBread updates a bread type.
func UpdateBread(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req breadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if !isValidBreadSize(req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid bread size"})
		return
	}

	updated, err := upstream.Default.UpdateBread(c.Request.Context(), middleware.Token(c), id, models.Bread{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bread updated successfully", "bread": updated})
}

// DeleteBread deletes a bread type.
func DeleteBread(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteBread(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bread deleted successfully"})
}
