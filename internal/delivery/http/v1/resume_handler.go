package v1

import (
	"io"
	"net/http"

	"go-jobfinder-backend/config"
	"go-jobfinder-backend/internal/delivery/http/response"
	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	profileUC domain.ProfileUsecase
	config    *config.Config
}

func NewResumeHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, cfg *config.Config) {
	handler := &ResumeHandler{profileUC: profileUC, config: cfg}
	protected.POST("/resume", handler.Upload)
}

// Upload godoc
// @Summary      Upload Resume
// @Description  Upload a resume (pdf, doc, docx or txt); the server extracts skills, education and experience into the profile
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      413     {object}  response.Response
// @Router       /resume [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("No resume file in request; use the 'resume' form field"))
		return
	}

	maxBytes := int64(h.config.MaxUploadSizeMB) << 20
	if fileHeader.Size > maxBytes {
		c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Resume file is too large", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if int64(len(data)) > maxBytes {
		c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Resume file is too large", nil))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	result, err := h.profileUC.ImportResume(c.Request.Context(), userID, fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Resume processed"
	if result.ExtractionMode == "keyword" {
		msg = "Resume processed with keyword extraction only; entity tagging was unavailable"
	}
	response.Success(c, http.StatusOK, msg, result)
}
