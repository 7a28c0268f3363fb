package v1

import (
	"net/http"

	"go-jobfinder-backend/internal/delivery/http/response"
	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
	}
}

type UpdateProfileRequest struct {
	Education  string `json:"education"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
}

// Get godoc
// @Summary      Get Profile
// @Description  Return the authenticated user's job-seeker profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile details", profile)
}

// Update godoc
// @Summary      Update Profile
// @Description  Create or update the profile fields used for job matching
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	profile := &domain.Profile{
		UserID:     userID,
		Education:  req.Education,
		Skills:     req.Skills,
		Experience: req.Experience,
		Location:   req.Location,
	}
	if err := h.profileUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}
