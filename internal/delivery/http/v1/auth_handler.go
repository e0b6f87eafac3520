package v1

import (
	"net/http"

	"recruitment-api/internal/delivery/http/middleware"
	"recruitment-api/internal/delivery/http/response"
	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves register and login for one account kind.
type AccountHandler struct {
	accountUC domain.AccountUsecase
}

// NewAccountHandler mounts POST /register and POST /login on group.
// Extra handlers (rate limiting) run before both.
func NewAccountHandler(group *gin.RouterGroup, accountUC domain.AccountUsecase, extra ...gin.HandlerFunc) {
	handler := &AccountHandler{accountUC: accountUC}

	routes := group.Group("", extra...)
	routes.POST("/register", handler.Register)
	routes.POST("/login", handler.Login)
}

// Register godoc
// @Summary      Register an account
// @Description  Creates a user, candidate or recruiter account and returns a 1 hour token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterInput  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /candidate/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	result, err := h.accountUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	kind := h.accountUC.Kind()
	response.Success(c, http.StatusCreated, kind.Label()+" registered successfully", authPayload(kind, result))
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginInput  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /candidate/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var input domain.LoginInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	result, err := h.accountUC.Login(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	kind := h.accountUC.Kind()
	response.Success(c, http.StatusOK, kind.Label()+" logged in successfully", authPayload(kind, result))
}

func authPayload(kind domain.AccountKind, result *domain.AuthResult) gin.H {
	return gin.H{
		string(kind): result.Account.Summary(),
		"token":      result.Token,
	}
}

// TokenInfo echoes the verified claims of the caller.
func TokenInfo(c *gin.Context) {
	claims, ok := middleware.AuthFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized"))
		return
	}
	response.Success(c, http.StatusOK, "Token is valid", claims)
}
