// Package auth mints and verifies the session token that carries the
// authenticated identity between requests. The token is an HS256 JWT set as
// an HttpOnly cookie after the Google login callback; the OAuth handshake
// itself lives in the login package.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pcote/learningmachine/internal/config"
)

const CookieName = "lm_session"

const sessionTTL = time.Hour * 168

// SessionUser is the identity attached to an authenticated request.
type SessionUser struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type Sessions struct {
	secret []byte
	domain string
}

func New(cfg config.SessionConfig) *Sessions {
	return &Sessions{
		secret: []byte(cfg.Secret),
		domain: cfg.Domain,
	}
}

func (s *Sessions) Generate(email, displayName string) (string, error) {
	claims := jwt.MapClaims{
		"email":        email,
		"display_name": displayName,
		"exp":          time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Sessions) Verify(tokenString string) (SessionUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return SessionUser{}, fmt.Errorf("invalid or expired session")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return SessionUser{}, fmt.Errorf("invalid session claims")
	}

	email, ok := claims["email"].(string)

	if !ok || email == "" {
		return SessionUser{}, fmt.Errorf("invalid email in session claims")
	}

	displayName, _ := claims["display_name"].(string)

	return SessionUser{
		Email:       email,
		DisplayName: displayName,
	}, nil
}

func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
