package manager

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

type bakingRequest struct {
	BreadID       int    `json:"breadId" binding:"required"`
	QuantityBaked int    `json:"quantityBaked" binding:"required,gt=0"`
	Date          string `json:"date" binding:"required"`
}

// GetBaking lists baking records.
func GetBaking(c *gin.Context) {
	records, err := upstream.Default.ListBaking(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	records = search.Filter(records, c.Query("q"), func(r models.BakingRecord) []string {
		fields := []string{r.Date}
		if r.Bread != nil {
			fields = append(fields, r.Bread.Name)
		}
		return fields
	})

	c.JSON(http.StatusOK, gin.H{"baking": records})
}

// CreateBaking records a baked batch.
func CreateBaking(c *gin.Context) {
	var req bakingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date: Must be a valid date"})
		return
	}

	created, err := upstream.Default.CreateBaking(c.Request.Context(), middleware.Token(c), models.BakingRecord{
		BreadID:       req.BreadID,
		QuantityBaked: req.QuantityBaked,
		Date:          req.Date,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Baking record created successfully", "baking": created})
}

// UpdateBaking updates a baking record.
func UpdateBaking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req bakingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date: Must be a valid date"})
		return
	}

	updated, err := upstream.Default.UpdateBaking(c.Request.Context(), middleware.Token(c), id, models.BakingRecord{
		BreadID:       req.BreadID,
		QuantityBaked: req.QuantityBaked,
		Date:          req.Date,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Baking record updated successfully", "baking": updated})
}

// DeleteBaking deletes a baking record.
func DeleteBaking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteBaking(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Baking record deleted successfully"})
}
