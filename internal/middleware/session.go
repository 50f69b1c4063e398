package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/capability"
	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/internal/session"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
	"github.com/armonia-apps/msa-client-api/pkg/response"
)

// ContextUserKey stores the resolved user on the request context.
const ContextUserKey = "currentUser"

// sessionSource is the slice of the session store the gates depend on.
type sessionSource interface {
	Current() session.Snapshot
}

// RequireSession blocks requests until the session store has completed its
// startup resolution and the caller is authenticated. The snapshot is read
// per request, so a logout elsewhere takes effect immediately.
func RequireSession(sessions sessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := sessions.Current()
		if !snap.Initialized {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "session is still resolving"))
			c.Abort()
			return
		}
		if !snap.Authenticated() {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Set(ContextUserKey, snap.User)
		c.Next()
	}
}

// RequireAction gates a route on the capability set of the live session
// role. The set is re-derived on every request, never cached, so switching
// accounts cannot leak a previous role's permissions.
func RequireAction(sessions sessionSource, action capability.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := sessions.Current()
		if !snap.Authenticated() {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !capability.ForRole(snap.User.Role).Allows(action) {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the resolved user placed by RequireSession.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
