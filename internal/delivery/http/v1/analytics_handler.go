package v1

import (
	"net/http"
	"strconv"

	"go-jobfinder-backend/internal/delivery/http/response"
	"go-jobfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewAnalyticsHandler(protected *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}
	protected.GET("/analytics", handler.Overview)
}

// Overview godoc
// @Summary      Job Market Analytics
// @Description  Salary statistics, skill demand and location/category distributions over recently cached postings, with Chart.js-ready datasets
// @Tags         analytics
// @Produce      json
// @Param        limit  query     int  false  "Number of cached postings to analyze (default 100)"
// @Success      200    {object}  response.Response
// @Router       /analytics [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	overview, err := h.analyticsUC.Overview(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job market analytics", overview)
}
