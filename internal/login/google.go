// Package login performs the Google OAuth code exchange. The rest of the
// application only ever sees the resulting email and display name; session
// state is handled by the auth package.
package login

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pcote/learningmachine/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// UserInfo is the authenticated identity returned by Google.
type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Handler struct {
	oauth *oauth2.Config
}

func New(cfg config.GoogleConfig) *Handler {
	return &Handler{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// AuthURL returns the provider URL to send an unauthenticated user to.
func (h *Handler) AuthURL(state string) string {
	return h.oauth.AuthCodeURL(state)
}

// Exchange trades the callback code for an access token and fetches the
// user's email and display name from the userinfo endpoint.
func (h *Handler) Exchange(ctx context.Context, code string) (UserInfo, error) {
	token, err := h.oauth.Exchange(ctx, code)

	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	client := h.oauth.Client(ctx, token)

	resp, err := client.Get(userinfoURL)

	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("userinfo request returned %s", resp.Status)
	}

	var info UserInfo

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return UserInfo{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	if info.Email == "" {
		return UserInfo{}, fmt.Errorf("userinfo response missing email")
	}

	return info, nil
}
