package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/upstream"
	"bakery_frontdesk/pkg/utils"
)

// GetReports lists the reports branch managers have forwarded to the admin.
func GetReports(c *gin.Context) {
	reports, err := upstream.Default.ListReports(c.Request.Context(), middleware.Token(c))
	if err != nil {
		utils.UpstreamErrorResponse(c, err)
		return
	}

	forwarded := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if r.SentToAdmin {
			forwarded = append(forwarded, r)
		}
	}

	c.JSON(http.StatusOK, gin.H{"reports": forwarded})
}
