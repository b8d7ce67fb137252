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

type branchRequest struct {
	BranchName string `json:"branchName" binding:"required"`
	Location   string `json:"location" binding:"required"`
	ManagerID  int    `json:"managerId"`
}

// GetBranches lists all branches with their assigned managers.
func GetBranches(c *gin.Context) {
	branches, err := upstream.Default.ListBranches(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	branches = search.Filter(branches, c.Query("q"), func(b models.Branch) []string {
		fields := []string{b.BranchName, b.Location}
		if b.Manager != nil {
			fields = append(fields, b.Manager.Name)
		}
		return fields
	})

	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

// AddBranch creates a branch. The one-manager-per-branch rule is enforced
// upstream; its error message passes through verbatim.
func AddBranch(c *gin.Context) {
	var req branchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	created, err := upstream.Default.AddBranch(c.Request.Context(), middleware.Token(c), models.Branch{
		BranchName: req.BranchName,
		Location:   req.Location,
		ManagerID:  req.ManagerID,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Branch created successfully", "branch": created})
}

// UpdateBranch updates a branch.
func UpdateBranch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req branchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	updated, err := upstream.Default.UpdateBranch(c.Request.Context(), middleware.Token(c), id, models.Branch{
		BranchName: req.BranchName,
		Location:   req.Location,
		ManagerID:  req.ManagerID,
	})
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Branch updated successfully", "branch": updated})
}

// DeleteBranch deletes a branch.
func DeleteBranch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := upstream.Default.DeleteBranch(c.Request.Context(), middleware.Token(c), id); err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted successfully"})
}
