package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// Context keys set by the session middleware.
const (
	CtxSession   = "session"
	CtxSessionID = "session_id"
	CtxUserID    = "user_id"
	CtxUserRole  = "user_role"
)

// SessionMW restores the session from the signed cookie on every request.
type SessionMW struct {
	sessionSvc domain.SessionService
	cookieName string
}

// NewSessionMW creates new session middleware
func NewSessionMW(sessionSvc domain.SessionService, cookieName string) *SessionMW {
	return &SessionMW{
		sessionSvc: sessionSvc,
		cookieName: cookieName,
	}
}

// WithSession restores the session if the cookie resolves to a valid
// record. Restoration is optimistic and never blocks the request: a
// missing, invalid or corrupt session simply leaves the request anonymous,
// and a cookie that no longer resolves is dropped so the browser does not
// keep presenting it.
func (mw *SessionMW) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken, err := c.Cookie(mw.cookieName)
		if err != nil {
			c.Next()
			return
		}

		session, err := mw.sessionSvc.Restore(c.Request.Context(), cookieToken)
		if err != nil {
			c.SetCookie(mw.cookieName, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		c.Set(CtxSession, session)
		c.Set(CtxSessionID, session.ID)
		c.Set(CtxUserID, session.UserID)
		c.Set(CtxUserRole, string(session.Role))
		c.Next()
	}
}

// RequireAuth aborts API requests that carry no restored session.
func (mw *SessionMW) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CtxSession); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFrom extracts the restored session from the request context.
func SessionFrom(c *gin.Context) (*domain.Session, bool) {
	value, exists := c.Get(CtxSession)
	if !exists {
		return nil, false
	}
	session, ok := value.(*domain.Session)
	return session, ok
}
