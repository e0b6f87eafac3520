package v1

import (
	"fmt"
	"net/http"

	"recruitment-api/internal/delivery/http/response"
	"recruitment-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewRecruiterHandler mounts the candidate listing and export on a group
// that already enforces the recruiter role.
func NewRecruiterHandler(gated *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &RecruiterHandler{candidateUC: candidateUC}

	gated.GET("/candidates", handler.ListCandidates)
	gated.GET("/candidates/export", handler.ExportCandidates)
}

// ListCandidates godoc
// @Summary      List candidates
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CandidateRecord}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /recruiter/candidates [get]
// @Security     BearerAuth
func (h *RecruiterHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.candidateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates", candidates)
}

// ExportCandidates godoc
// @Summary      Export candidates as xlsx or csv
// @Tags         recruiter
// @Produce      application/octet-stream
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200
// @Failure      400  {object}  response.Response
// @Router       /recruiter/candidates/export [get]
// @Security     BearerAuth
func (h *RecruiterHandler) ExportCandidates(c *gin.Context) {
	file, err := h.candidateUC.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
