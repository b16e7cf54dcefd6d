package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/auth"
)

// Welcome sends unauthenticated visitors to the static welcome page, where
// the login button lives.
func (h *Handler) Welcome(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/static/welcome.html")
}

// Login drives both halves of the Google OAuth flow. Without a code query
// param this is the initial phase: redirect to the provider. With a code we
// are coming back from Google: exchange it, make sure a user row exists for
// the email, set the session cookie, and land on the main page.
func (h *Handler) Login(ctx *gin.Context) {
	code := ctx.Query("code")

	if code == "" {
		ctx.Redirect(http.StatusFound, h.google.AuthURL("login"))
		return
	}

	info, err := h.google.Exchange(ctx.Request.Context(), code)

	if err != nil {
		h.log.Error().Err(err).Msg("oauth code exchange failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Login failed"})
		return
	}

	exists, err := h.store.UserExists(ctx.Request.Context(), info.Email)

	if err != nil {
		h.log.Error().Err(err).Str("email", info.Email).Msg("failed to look up user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !exists {
		if err := h.store.AddUser(ctx.Request.Context(), info.Email, info.Name); err != nil {
			h.log.Error().Err(err).Str("email", info.Email).Msg("failed to create user")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	token, err := h.sessions.Generate(info.Email, info.Name)

	if err != nil {
		h.log.Error().Err(err).Msg("failed to generate session token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.sessions.SetCookie(ctx.Writer, token)
	ctx.Redirect(http.StatusFound, "/static/main.html")
}

func (h *Handler) Logout(ctx *gin.Context) {
	h.sessions.ClearCookie(ctx.Writer)
	ctx.Redirect(http.StatusFound, "/static/welcome.html")
}

// UserInfo reports the session identity. A missing or invalid session is
// not a fault here; the front-end probes this route to decide whether to
// show the login button, so it gets an error sentinel payload instead.
func (h *Handler) UserInfo(ctx *gin.Context) {
	cookie, err := ctx.Cookie(auth.CookieName)

	if err == nil && cookie != "" {
		if user, err := h.sessions.Verify(cookie); err == nil {
			ctx.JSON(http.StatusOK, user)
			return
		}
	}

	ctx.JSON(http.StatusOK, auth.SessionUser{
		Email:       "error",
		DisplayName: "Could not get info for this user",
	})
}
