package v1

import (
	"net/http"

	"recruitment-api/internal/delivery/http/response"
	"recruitment-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler mounts the profile routes on an authenticated candidate group.
func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	protected.POST("/:id/profile", handler.Upsert)
	protected.GET("/:id/profile", handler.Get)
}

// Upsert godoc
// @Summary      Create or replace a candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Candidate external id"
// @Param        profile  body      domain.ProfileInput  true  "Profile"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate/{id}/profile [post]
// @Security     BearerAuth
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var input domain.ProfileInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.Upsert(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile updated successfully", gin.H{"profile": profile})
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", gin.H{"profile": profile})
}
