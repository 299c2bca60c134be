package middleware

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionID = "SessionID"

// Session ensures every client carries an opaque session id cookie. The
// cookie holds no data; all session state lives server-side keyed by this id.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(session.CookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, sid, 0, "/", "", secure, true)
		}
		c.Set(ctxSessionID, sid)
		c.Next()
	}
}

// SessionID returns the session id established by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// RequireRole gates a route group on a logged-in session identity with the
// given role. On success the user id and role are placed in the gin context.
func RequireRole(sessions session.Store, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := SessionID(c)

		var userType string
		found, err := sessions.Get(c.Request.Context(), sid, domain.SessionKeyUserType, &userType)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			c.Abort()
			return
		}
		if !found {
			response.Error(c, http.StatusUnauthorized, "Please login to continue.", nil)
			c.Abort()
			return
		}
		if userType != role {
			response.Error(c, http.StatusForbidden, "You do not have access to this resource.", nil)
			c.Abort()
			return
		}

		var userID int64
		if _, err := sessions.Get(c.Request.Context(), sid, domain.SessionKeyUserID, &userID); err != nil {
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserRole), userType)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireRole.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(string(domain.KeyUserID))
}
