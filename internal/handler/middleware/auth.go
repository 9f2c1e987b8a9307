package middleware

import (
	"net/http"
	"strings"

	"consultbook/internal/handler/httperr"
	"consultbook/internal/pkg/errs"
	"consultbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const adminRole = "admin"

var errAdminAuth = errs.New("admin authentication failed")

// AdminAuthMiddleware guards the operator endpoints. Only the single
// operator credential exists here; end-user authentication is an
// external collaborator and public endpoints carry no token at all.
type AdminAuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAdminAuthMiddleware(jwtService *jwt.Service) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{jwtService: jwtService}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminAuth, "Missing bearer token", "unauthorized")
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", "unauthorized")
			return
		}
		if claims.Role != adminRole {
			httperr.AbortWithError(c, http.StatusForbidden, errAdminAuth, "Admin role required", "forbidden")
			return
		}

		c.Set("admin_subject", claims.Subject)
		c.Next()
	}
}
