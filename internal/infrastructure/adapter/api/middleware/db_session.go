package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database/versioning"
)

// SessionProvider creates the session of one request
type SessionProvider func() *database.GormSession

// DBSession gives every request its own transactional session, reachable through
// the request context. The session is closed when the request ends; a transaction
// still open at that point is rolled back and reported.
func DBSession(newSession SessionProvider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := newSession()

		ctx := persistence.ContextWithSession(c.Request.Context(), session)
		ctx = versioning.ContextWithRemoteAddr(ctx, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		defer func() {
			if session.Close(context.WithoutCancel(ctx)) {
				logger.Warn("Request ended with an open database transaction", map[string]any{
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": c.GetHeader(RequestIDHeader),
				})
			}
		}()

		c.Next()
	}
}
