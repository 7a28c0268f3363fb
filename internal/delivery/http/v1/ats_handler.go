package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"go-jobfinder-backend/internal/delivery/http/response"
	"go-jobfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ATSHandler struct {
	atsUC domain.ATSUsecase
}

func NewATSHandler(protected *gin.RouterGroup, atsUC domain.ATSUsecase) {
	handler := &ATSHandler{atsUC: atsUC}

	ats := protected.Group("/ats")
	{
		ats.GET("/scores", handler.Scores)
		ats.GET("/export", handler.Export)
	}
}

// Scores godoc
// @Summary      ATS Compatibility Scores
// @Description  Score the user's profile against recently cached postings with a weighted keyword/skills/experience/education breakdown
// @Tags         ats
// @Produce      json
// @Param        limit  query     int  false  "Number of cached postings to score (default 50)"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /ats/scores [get]
func (h *ATSHandler) Scores(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	userID := c.GetInt64(string(domain.KeyUserID))

	report, err := h.atsUC.ScoreJobs(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "ATS analysis", report)
}

// Export godoc
// @Summary      Export ATS Report
// @Description  Download the ATS analysis as an Excel workbook
// @Tags         ats
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        limit  query  int  false  "Number of cached postings to score (default 50)"
// @Success      200
// @Failure      400  {object}  response.Response
// @Router       /ats/export [get]
func (h *ATSHandler) Export(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	userID := c.GetInt64(string(domain.KeyUserID))

	data, filename, err := h.atsUC.ExportReport(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
