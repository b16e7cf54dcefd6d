package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/auth"
	"github.com/pcote/learningmachine/internal/types"
)

// SessionAuth rejects requests without a valid session cookie and places
// the session identity in the gin context for handlers. Identity only ever
// comes from the cookie, never from the request payload.
func SessionAuth(sessions *auth.Sessions) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(auth.CookieName)

		if err != nil || cookie == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		user, err := sessions.Verify(cookie)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}
