package v1

import (
	"net/http"
	"strconv"

	"go-jobfinder-backend/internal/delivery/http/response"
	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	searchUC domain.SearchUsecase
	savedUC  domain.SavedPostingUsecase
}

func NewJobHandler(protected *gin.RouterGroup, searchUC domain.SearchUsecase, savedUC domain.SavedPostingUsecase) {
	handler := &JobHandler{searchUC: searchUC, savedUC: savedUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("/search", handler.Search)
		jobs.GET("", handler.ListCached)
		jobs.GET("/history", handler.History)
		jobs.POST("/saved", handler.Save)
		jobs.GET("/saved", handler.ListSaved)
		jobs.DELETE("/saved/:job_id", handler.Unsave)
	}
}

type SearchRequest struct {
	Query      string `json:"query" binding:"required"`
	Country    string `json:"country"`
	MaxResults int    `json:"max_results"`
}

type SaveJobRequest struct {
	JobID           string  `json:"job_id" binding:"required"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Search godoc
// @Summary      Search Jobs
// @Description  Fetch live postings for the query, cache them and rank them against the user's profile. Serves cached postings flagged stale when the live feed is down.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        search  body      SearchRequest  true  "Search parameters"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /jobs/search [post]
func (h *JobHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	result, err := h.searchUC.SearchJobs(c.Request.Context(), userID, req.Query, req.Country, req.MaxResults)
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Search results"
	if result.Stale {
		msg = result.Warning
	}
	response.Success(c, http.StatusOK, msg, result)
}

// ListCached godoc
// @Summary      List Cached Jobs
// @Description  Browse previously fetched postings, newest first, optionally filtered
// @Tags         jobs
// @Produce      json
// @Param        title     query     string  false  "Filter by title substring"
// @Param        location  query     string  false  "Filter by location substring"
// @Param        limit     query     int     false  "Max rows (default 100)"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListCached(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := domain.PostingFilter{
		TitleContains:    c.Query("title"),
		LocationContains: c.Query("location"),
		Limit:            limit,
	}

	postings, err := h.searchUC.ListCachedJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Cached jobs", postings)
}

// History godoc
// @Summary      Search History
// @Description  Return the user's recent searches, newest first
// @Tags         jobs
// @Produce      json
// @Param        limit  query     int  false  "Max rows (default 50)"
// @Success      200    {object}  response.Response
// @Router       /jobs/history [get]
func (h *JobHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	userID := c.GetInt64(string(domain.KeyUserID))

	records, err := h.searchUC.SearchHistory(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search history", records)
}

// Save godoc
// @Summary      Save Job
// @Description  Bookmark a cached posting with its similarity score
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      SaveJobRequest  true  "Job to save"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/saved [post]
func (h *JobHandler) Save(c *gin.Context) {
	var req SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.savedUC.SaveJob(c.Request.Context(), userID, req.JobID, req.SimilarityScore); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", nil)
}

// ListSaved godoc
// @Summary      List Saved Jobs
// @Description  Return the user's bookmarked postings with fit percentages
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/saved [get]
func (h *JobHandler) ListSaved(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	saved, err := h.savedUC.ListSavedJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs", saved)
}

// Unsave godoc
// @Summary      Remove Saved Job
// @Description  Delete a bookmark by job ID
// @Tags         jobs
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/saved/{job_id} [delete]
func (h *JobHandler) Unsave(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.savedUC.UnsaveJob(c.Request.Context(), userID, c.Param("job_id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from saved list", nil)
}
