package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ticktock/middleware"
	"ticktock/models"
	"ticktock/repository"
	"ticktock/seed"
)

func newAuth(t *testing.T) *middleware.Auth {
	t.Helper()
	data, err := seed.Build(bcrypt.MinCost)
	require.NoError(t, err)
	return middleware.NewAuth("test-secret", repository.NewMemoryStore(data))
}

func protected(a *middleware.Auth) http.Handler {
	return a.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := middleware.GetUserFromContext(r.Context())
		w.Write([]byte(user.Email))
	}))
}

func TestTokenRoundTrip(t *testing.T) {
	a := newAuth(t)
	token, err := a.GenerateToken(&models.User{ID: 2, Email: "test@example.com"}, time.Hour)
	require.NoError(t, err)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Equal(t, "2", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	other := middleware.NewAuth("other-secret", nil)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	a := newAuth(t)
	token, err := a.GenerateToken(&models.User{ID: 2}, -time.Minute)
	require.NoError(t, err)
	_, err = a.ValidateToken(token)
	assert.Error(t, err)
}

func TestRequire(t *testing.T) {
	a := newAuth(t)
	h := protected(a)
	token, err := a.GenerateToken(&models.User{ID: 1}, time.Hour)
	require.NoError(t, err)

	t.Run("no token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "john.doe@example.com", rec.Body.String())
	})

	t.Run("bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("garbage clears cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "garbage"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotEmpty(t, rec.Result().Cookies())
		assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
	})

	t.Run("unknown user", func(t *testing.T) {
		ghost, err := a.GenerateToken(&models.User{ID: 404}, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+ghost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

type brokenUsers struct{}

func (brokenUsers) UserByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection reset")
}

func (brokenUsers) UserByID(context.Context, uint) (*models.User, error) {
	return nil, errors.New("connection reset")
}

func TestRequireStoreFailure(t *testing.T) {
	a := middleware.NewAuth("test-secret", brokenUsers{})
	token, err := a.GenerateToken(&models.User{ID: 1}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(a).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
