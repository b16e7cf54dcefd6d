// Package handlers binds the HTTP routes to store operations. Each handler
// derives the acting user from the session placed in the gin context by the
// auth middleware and serializes store records into response structs at the
// boundary.
package handlers

import (
	"github.com/pcote/learningmachine/internal/auth"
	"github.com/pcote/learningmachine/internal/login"
	"github.com/pcote/learningmachine/internal/store"
	"github.com/rs/zerolog"
)

type Handler struct {
	store    *store.Store
	sessions *auth.Sessions
	google   *login.Handler
	log      zerolog.Logger
}

func New(st *store.Store, sessions *auth.Sessions, google *login.Handler, log zerolog.Logger) *Handler {
	return &Handler{
		store:    st,
		sessions: sessions,
		google:   google,
		log:      log,
	}
}
