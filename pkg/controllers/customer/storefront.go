package customer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/search"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

// GetBranches lists branches for the storefront.
func GetBranches(c *gin.Context) {
	branches, err := upstream.Default.ListBranches(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	branches = search.Filter(branches, c.Query("q"), func(b models.Branch) []string {
		return []string{b.BranchName, b.Location}
	})

	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

// GetBranchProducts lists the products of one branch. The branch's manager is
// resolved from the branches list; the product catalog is keyed by manager.
func GetBranchProducts(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid branch ID"})
		return
	}

	manager, ok := resolveBranchManager(c, branchID)
	if !ok {
		return
	}

	products, err := upstream.Default.ListProducts(c.Request.Context(), middleware.Token(c), manager.ID)
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	products = search.Filter(products, c.Query("q"), func(p models.Product) []string {
		return []string{p.Name, string(p.Status)}
	})

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// resolveBranchManager finds a branch in the upstream branches list and
// returns its assigned manager. Responds and returns false on failure.
func resolveBranchManager(c *gin.Context, branchID int) (*models.User, bool) {
	branches, err := upstream.Default.ListBranches(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return nil, false
	}

	for i := range branches {
		if branches[i].ID == branchID {
			if branches[i].Manager == nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Branch has no assigned manager"})
				return nil, false
			}
			return branches[i].Manager, true
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Branch not found"})
	return nil, false
}
