package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jinxsazzad/sportifyu-server/model"
	"github.com/jinxsazzad/sportifyu-server/token"
	"github.com/jinxsazzad/sportifyu-server/util"
)

type claimsKey struct{}

// RoleResolver reports the stored role for an authenticated email.
// *storage.Store satisfies it; tests substitute their own.
type RoleResolver interface {
	RoleOf(email string) (string, error)
}

// Gate holds the two request precondition stages. Routes compose them:
// public routes use neither, authenticated routes RequireAuth, admin
// routes RequireAuth then RequireAdmin.
type Gate struct {
	tokens *token.Service
	roles  RoleResolver
}

func NewGate(tokens *token.Service, roles RoleResolver) *Gate {
	return &Gate{tokens: tokens, roles: roles}
}

// RequireAuth rejects requests without a valid Bearer token and stashes
// the decoded claims in the request context for later stages.
func (g *Gate) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			util.WriteErrorResponse(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
			return
		}
		claims, err := g.tokens.Verify(raw)
		if err != nil {
			util.WriteErrorResponse(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin looks up the authenticated user's stored role and rejects
// everyone but admins. Must run after RequireAuth.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			util.WriteErrorResponse(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
			return
		}
		role, err := g.roles.RoleOf(claims.Email)
		if err != nil || role != model.RoleAdmin {
			util.WriteErrorResponse(w, http.StatusForbidden, util.ErrForbidden.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the claims RequireAuth attached, or nil on an
// ungated route.
func ClaimsFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*token.Claims)
	return claims
}
