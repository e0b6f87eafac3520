package v1

import (
	"net/http"

	"recruitment-api/internal/delivery/http/response"
	"recruitment-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// CandidateHandler is the open CRUD surface over candidate records.
type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/skill/:skill", handler.ListBySkill)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a candidate record
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate"
// @Success      201  {object}  response.Response{data=domain.CandidateRecord}
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates", candidates)
}

func (h *CandidateHandler) ListBySkill(c *gin.Context) {
	candidates, err := h.candidateUC.ListBySkill(c.Request.Context(), c.Param("skill"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates", candidates)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := candidateIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// Update godoc
// @Summary      Update a candidate record
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      int                    true  "Candidate id"
// @Param        candidate  body      domain.CandidateInput  true  "Candidate"
// @Success      200  {object}  response.Response{data=domain.CandidateRecord}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := candidateIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var input domain.CandidateInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := candidateIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}
