package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/jwt"
)

func testRig(t *testing.T) (*Auth, *jwt.Jwt) {
	t.Helper()
	jwtService := jwt.New("test-secret", time.Hour)
	return NewAuth(jwtService), jwtService
}

func claimsEcho(t *testing.T, got **UserClaims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestNeedAuth(t *testing.T) {
	authMw, jwtService := testRig(t)

	t.Run("no token", func(t *testing.T) {
		var got *UserClaims
		handler := authMw.NeedAuth()(claimsEcho(t, &got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, got)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := jwtService.NewToken(domain.User{Id: 7, Email: "alice@example.com", Role: domain.RoleMember, DepartmentId: 5})
		require.NoError(t, err)

		var got *UserClaims
		handler := authMw.NeedAuth()(claimsEcho(t, &got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, got)
		assert.Equal(t, int64(7), got.Id)
		assert.Equal(t, int64(5), got.DepartmentId)
		assert.False(t, got.Admin)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := jwt.New("other-secret", time.Hour).NewToken(domain.User{Id: 7})
		require.NoError(t, err)

		var got *UserClaims
		handler := authMw.NeedAuth()(claimsEcho(t, &got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	authMw, jwtService := testRig(t)

	t.Run("member is rejected", func(t *testing.T) {
		token, err := jwtService.NewToken(domain.User{Id: 7, Role: domain.RoleMember, DepartmentId: 5})
		require.NoError(t, err)

		var got *UserClaims
		handler := authMw.AdminOnly()(claimsEcho(t, &got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Nil(t, got)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := jwtService.NewToken(domain.User{Id: 7, Role: domain.RoleAdmin, DepartmentId: 5})
		require.NoError(t, err)

		var got *UserClaims
		handler := authMw.AdminOnly()(claimsEcho(t, &got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, got)
		assert.True(t, got.Admin)
	})
}
