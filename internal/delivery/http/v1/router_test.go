package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recruitment-api/config"
	"recruitment-api/internal/delivery/http/middleware"
	"recruitment-api/internal/delivery/http/response"
	v1 "recruitment-api/internal/delivery/http/v1"
	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"
	"recruitment-api/pkg/audit"
	"recruitment-api/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountUC struct {
	mock.Mock
	kind domain.AccountKind
}

func (m *MockAccountUC) Kind() domain.AccountKind { return m.kind }

func (m *MockAccountUC) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAccountUC) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

type MockProfileUC struct {
	mock.Mock
}

func (m *MockProfileUC) Upsert(ctx context.Context, candidateID string, input domain.ProfileInput) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, candidateID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockProfileUC) Get(ctx context.Context, candidateID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

type MockCandidateUC struct {
	mock.Mock
}

func (m *MockCandidateUC) Create(ctx context.Context, input domain.CandidateInput) (*domain.CandidateRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateRecord), args.Error(1)
}

func (m *MockCandidateUC) List(ctx context.Context) ([]domain.CandidateRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CandidateRecord), args.Error(1)
}

func (m *MockCandidateUC) ListBySkill(ctx context.Context, skill string) ([]domain.CandidateRecord, error) {
	args := m.Called(ctx, skill)
	return args.Get(0).([]domain.CandidateRecord), args.Error(1)
}

func (m *MockCandidateUC) Get(ctx context.Context, id int64) (*domain.CandidateRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateRecord), args.Error(1)
}

func (m *MockCandidateUC) Update(ctx context.Context, id int64, input domain.CandidateInput) (*domain.CandidateRecord, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateRecord), args.Error(1)
}

func (m *MockCandidateUC) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCandidateUC) Export(ctx context.Context, format string) (*domain.ExportFile, error) {
	args := m.Called(ctx, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

type stubHealth struct{}

func (stubHealth) Check(context.Context) map[string]string {
	return map[string]string{"status": "ok", "database": "ok"}
}

type fixture struct {
	router      *gin.Engine
	tokens      *auth.JWTService
	userUC      *MockAccountUC
	candidateUC *MockAccountUC
	recruiterUC *MockAccountUC
	profileUC   *MockProfileUC
	crudUC      *MockCandidateUC
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	f := &fixture{
		tokens:      auth.NewJWTService("router-secret", time.Hour),
		userUC:      &MockAccountUC{kind: domain.AccountUser},
		candidateUC: &MockAccountUC{kind: domain.AccountCandidate},
		recruiterUC: &MockAccountUC{kind: domain.AccountRecruiter},
		profileUC:   new(MockProfileUC),
		crudUC:      new(MockCandidateUC),
	}

	auditLogger := audit.NewNop()
	f.router = v1.NewRouter(v1.RouterDeps{
		UserAuthUC:      f.userUC,
		CandidateAuthUC: f.candidateUC,
		RecruiterAuthUC: f.recruiterUC,
		ProfileUC:       f.profileUC,
		CandidateUC:     f.crudUC,
		HealthUC:        stubHealth{},
		Tokens:          f.tokens,
		RateLimiter:     middleware.NewRateLimiter(nil, auditLogger),
		Audit:           auditLogger,
		Logger:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Config:          &config.Config{Environment: "test", RateLimitWindowSeconds: 60},
	})
	return f
}

func (f *fixture) token(t *testing.T, role domain.Role) string {
	t.Helper()
	token, err := f.tokens.Issue(domain.TokenClaims{ID: "8d7e3f9a-0c1b-4e2d-9f3a-5b6c7d8e9f01", Email: "x@example.test", Role: role})
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture()

	t.Run("candidate register", func(t *testing.T) {
		input := domain.RegisterInput{Name: "Carl", Age: 28, Username: "carl", Email: "carl@example.test", Password: "p", ConfirmPassword: "p"}
		f.candidateUC.On("Register", mock.Anything, input).Return(&domain.AuthResult{
			Account: &domain.Account{Name: "Carl", Username: "carl", Email: "carl@example.test", PasswordHash: "hash"},
			Token:   "signed",
		}, nil).Once()

		w, body := f.do(http.MethodPost, "/candidate/register", "", input)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Candidate registered successfully", body.Message)

		data := body.Data.(map[string]interface{})
		assert.Equal(t, "signed", data["token"])
		assert.Equal(t, "carl@example.test", data["candidate"].(map[string]interface{})["email"])
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("passwords do not match", func(t *testing.T) {
		f.recruiterUC.On("Register", mock.Anything, mock.Anything).Return(nil, apperror.BadRequest("Passwords do not match")).Once()

		w, body := f.do(http.MethodPost, "/recruiter/register", "", map[string]interface{}{"password": "a", "confirmPassword": "b"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Passwords do not match", body.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		w, body := f.do(http.MethodPost, "/auth/user/register", "", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", body.Message)
	})

	t.Run("recruiter login not found", func(t *testing.T) {
		f.recruiterUC.On("Login", mock.Anything, domain.LoginInput{Email: "ghost@acme.test", Password: "x"}).
			Return(nil, apperror.Unauthorized("Recruiter not found")).Once()

		w, body := f.do(http.MethodPost, "/recruiter/login", "", domain.LoginInput{Email: "ghost@acme.test", Password: "x"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Recruiter not found", body.Message)
	})

	t.Run("user login", func(t *testing.T) {
		f.userUC.On("Login", mock.Anything, mock.Anything).Return(&domain.AuthResult{
			Account: &domain.Account{Name: "U", Email: "u@example.test"}, Token: "t",
		}, nil).Once()

		w, body := f.do(http.MethodPost, "/auth/user/login", "", domain.LoginInput{Email: "u@example.test", Password: "p"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User logged in successfully", body.Message)
		assert.Contains(t, body.Data.(map[string]interface{}), "user")
	})

	t.Run("unexpected failure is generic", func(t *testing.T) {
		f.userUC.On("Login", mock.Anything, mock.Anything).Return(nil, apperror.Internal(assert.AnError)).Once()

		w, body := f.do(http.MethodPost, "/auth/user/login", "", domain.LoginInput{Email: "u@example.test", Password: "p"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body.Message)
	})
}

func TestTokenInfo(t *testing.T) {
	f := newFixture()

	w, _ := f.do(http.MethodGet, "/auth/user/test", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := f.do(http.MethodGet, "/auth/user/test", f.token(t, ""), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "x@example.test", body.Data.(map[string]interface{})["email"])
}

func TestProfileUpsert(t *testing.T) {
	f := newFixture()
	const path = "/candidate/8d7e3f9a-0c1b-4e2d-9f3a-5b6c7d8e9f01/profile"
	input := domain.ProfileInput{Schooling: "BSc", MainSkill: "Go"}

	t.Run("requires a token", func(t *testing.T) {
		w, body := f.do(http.MethodPost, path, "", input)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Access denied. No token provided", body.Message)
		f.profileUC.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upserts", func(t *testing.T) {
		f.profileUC.On("Upsert", mock.Anything, "8d7e3f9a-0c1b-4e2d-9f3a-5b6c7d8e9f01", input).
			Return(&domain.CandidateProfile{ID: 1, CandidateID: "8d7e3f9a-0c1b-4e2d-9f3a-5b6c7d8e9f01", MainSkill: "Go"}, nil).Once()

		w, body := f.do(http.MethodPost, path, f.token(t, ""), input)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Candidate profile updated successfully", body.Message)
		profile := body.Data.(map[string]interface{})["profile"].(map[string]interface{})
		assert.Equal(t, "Go", profile["mainSkill"])
	})

	t.Run("unknown candidate", func(t *testing.T) {
		f.profileUC.On("Upsert", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.NotFound("Candidate not found")).Once()

		w, body := f.do(http.MethodPost, path, f.token(t, ""), input)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Candidate not found", body.Message)
	})
}

func TestRecruiterRoutes(t *testing.T) {
	f := newFixture()
	f.crudUC.On("List", mock.Anything).Return([]domain.CandidateRecord{{ID: 1, Name: "Dana"}}, nil)

	w, body := f.do(http.MethodGet, "/recruiter/candidates", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access denied. No token provided", body.Message)

	w, body = f.do(http.MethodGet, "/recruiter/candidates", f.token(t, domain.RoleCandidate), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access forbidden: Recruiters only", body.Message)

	w, body = f.do(http.MethodGet, "/recruiter/candidates", f.token(t, domain.RoleRecruiter), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body.Data, 1)

	t.Run("export", func(t *testing.T) {
		f.crudUC.On("Export", mock.Anything, "csv").Return(&domain.ExportFile{
			Filename: "candidates.csv", ContentType: "text/csv", Data: []byte("ID\n1\n"),
		}, nil).Once()

		w, _ := f.do(http.MethodGet, "/recruiter/candidates/export?format=csv", f.token(t, domain.RoleRecruiter), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="candidates.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "ID\n1\n", w.Body.String())
	})
}

func TestCandidateCRUD(t *testing.T) {
	f := newFixture()

	t.Run("create", func(t *testing.T) {
		input := domain.CandidateInput{Name: "Dana", Email: "dana@example.test", MainSkill: "Go"}
		f.crudUC.On("Create", mock.Anything, input).Return(&domain.CandidateRecord{ID: 3, Name: "Dana"}, nil).Once()

		w, body := f.do(http.MethodPost, "/candidates", "", input)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Candidate created", body.Message)
	})

	t.Run("filter by skill", func(t *testing.T) {
		f.crudUC.On("ListBySkill", mock.Anything, "Go").Return([]domain.CandidateRecord{}, nil).Once()

		w, _ := f.do(http.MethodGet, "/candidates/skill/Go", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		f.crudUC.On("Update", mock.Anything, int64(3), mock.Anything).Return(&domain.CandidateRecord{ID: 3}, nil).Once()

		w, body := f.do(http.MethodPut, "/candidates/3", "", domain.CandidateInput{Name: "Dana", Email: "d@example.test"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Candidate updated", body.Message)
	})

	t.Run("delete missing", func(t *testing.T) {
		f.crudUC.On("Delete", mock.Anything, int64(404)).Return(apperror.NotFound("Candidate not found")).Once()

		w, body := f.do(http.MethodDelete, "/candidates/404", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Candidate not found", body.Message)
	})

	t.Run("delete", func(t *testing.T) {
		f.crudUC.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		w, body := f.do(http.MethodDelete, "/candidates/3", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Candidate deleted", body.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		w, body := f.do(http.MethodGet, "/candidates/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid candidate id", body.Message)
	})
}

func TestHealthAndHelloWorld(t *testing.T) {
	f := newFixture()

	w, body := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body.Data.(map[string]interface{})["database"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	for _, path := range []string{"/candidate/hello-world", "/recruiter/hello-world"} {
		w, body := f.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello World", body.Message)
	}
}
