package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/services"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type stubValidator struct {
	userID string
	err    error
	seen   string
}

func (s *stubValidator) ValidateToken(_ context.Context, token string) (string, error) {
	s.seen = token
	return s.userID, s.err
}

func protectedRouter(tokens TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware(tokens))
	router.GET("/protected", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.String(http.StatusInternalServerError, "user id missing from context")
			return
		}
		c.String(http.StatusOK, "Hello "+userID)
	})
	return router
}

func callProtected(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Bearer12345", "", false},
		{"Token 12345", "", false},
		{"Bearer a b", "", false},
	}

	for _, tc := range cases {
		token, ok := bearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	secret := "test-secret-middleware"
	issuer := "test-issuer"

	t.Run("Success: Valid token from the token service", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokenService := services.NewTokenService(secret, issuer, time.Hour, mockRepo)
		router := protectedRouter(tokenService)

		mockRepo.On("GetByID", mock.Anything, "user-123").Return(&domain.User{ID: "user-123"}, nil)
		validToken, _ := tokenService.GenerateToken("user-123")

		w := callProtected(router, "Bearer "+validToken)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello user-123", w.Body.String())
	})

	t.Run("Fail: Missing Authorization header", func(t *testing.T) {
		w := callProtected(protectedRouter(&stubValidator{userID: "x"}), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header required")
	})

	t.Run("Fail: Malformed header never reaches the validator", func(t *testing.T) {
		validator := &stubValidator{userID: "x"}

		w := callProtected(protectedRouter(validator), "Token 12345")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid authorization header format")
		assert.Empty(t, validator.seen)
	})

	t.Run("Fail: Rejected token", func(t *testing.T) {
		validator := &stubValidator{err: errors.New("token is expired")}

		w := callProtected(protectedRouter(validator), "Bearer abc.def.ghi")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
		assert.Contains(t, w.Header().Get("WWW-Authenticate"), "invalid_token")
		assert.Equal(t, "abc.def.ghi", validator.seen)
	})

	t.Run("Fail: Empty user id is rejected", func(t *testing.T) {
		w := callProtected(protectedRouter(&stubValidator{}), "Bearer abc")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Token signed with another secret", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		trusted := services.NewTokenService(secret, issuer, time.Hour, mockRepo)
		attacker := services.NewTokenService("wrong-secret", issuer, time.Hour, mockRepo)

		badToken, _ := attacker.GenerateToken("attacker")
		w := callProtected(protectedRouter(trusted), "Bearer "+badToken)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Token of a deleted user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokenService := services.NewTokenService(secret, issuer, time.Hour, mockRepo)
		mockRepo.On("GetByID", mock.Anything, "gone").Return(nil, domain.ErrUserNotFound)

		token, _ := tokenService.GenerateToken("gone")
		w := callProtected(protectedRouter(tokenService), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
