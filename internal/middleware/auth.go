package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/techflow-dev/techflow/internal/domain"
	jwt_internal "github.com/techflow-dev/techflow/internal/jwt"
	"github.com/techflow-dev/techflow/internal/logger"
	"github.com/techflow-dev/techflow/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// UserClaims is what the token carries; every handler scopes its
// queries by DepartmentId taken from here, never from client input.
type UserClaims struct {
	Id           domain.UserId
	Email        domain.Email
	Admin        bool
	DepartmentId domain.DepartmentId
}

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires authentication
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly returns middleware that requires admin authentication
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

func (a *Auth) extractUser(r *http.Request) (*UserClaims, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, errInvalidClaims
	}
	isAdmin, ok := claims["admin"].(bool)
	if !ok {
		return nil, errInvalidClaims
	}
	departmentFloat, ok := claims["department"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}

	return &UserClaims{
		Id:           int64(uidFloat),
		Email:        email,
		Admin:        isAdmin,
		DepartmentId: int64(departmentFloat),
	}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				switch err {
				case errNoToken:
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					http.Error(w, "Invalid token", http.StatusUnauthorized)
				default:
					// Token decode error
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			if adminOnly && !user.Admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user claims from the context
func GetUserFromContext(r *http.Request) *UserClaims {
	user, ok := r.Context().Value(UserClaimsKey).(*UserClaims)
	if !ok {
		return nil
	}
	return user
}
