package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"renta-autos-backend/internal/platform/httpapi"
)

const (
	CookieName = "session_token"

	CtxUserIDKey   = "user_id"
	CtxUsernameKey = "username"
	CtxRoleKey     = "role"
)

// RequireSession resolves the session cookie and puts the user id and
// role on the request context. Browser requests bounce to the login
// page instead of getting a JSON 401.
func RequireSession(sm *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			abortUnauthenticated(c)
			return
		}

		s, ok := sm.Get(token)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		c.Set(CtxUserIDKey, s.UserID)
		c.Set(CtxUsernameKey, s.Username)
		c.Set(CtxRoleKey, s.Role)
		c.Next()
	}
}

// RequireRole allows the request through only when the session role is
// in the allow-list. Must run after RequireSession.
func RequireRole(roles ...string) gin.HandlerFunc {
	roleSet := make(map[string]struct{})
	for _, r := range roles {
		if r == "" {
			continue
		}
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		v, ok := c.Get(CtxRoleKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, httpapi.Body(httpapi.CodeForbidden, "rol no presente en la sesión"))
			return
		}

		role, ok := v.(string)
		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, httpapi.Body(httpapi.CodeForbidden, "rol inválido"))
			return
		}

		if _, allowed := roleSet[role]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, httpapi.Body(httpapi.CodeForbidden, "operación no permitida para este rol"))
			return
		}

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpapi.Body(httpapi.CodeUnauthenticated, "sesión no iniciada"))
}
