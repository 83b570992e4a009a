package client

import (
	"context"
	"net/http"
)

// Auth wraps the /api/v1/auth resource.
type Auth struct {
	c *Client
}

// Auth returns the auth resource wrapper.
func (c *Client) Auth() *Auth {
	return &Auth{c: c}
}

// Login exchanges credentials for a bearer token and installs it on the
// shared client.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := a.c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &resp); err != nil {
		return "", err
	}
	a.c.SetToken(resp.Token)
	return resp.Token, nil
}

// Logout tells the server goodbye and clears the local token.
func (a *Auth) Logout(ctx context.Context) error {
	err := a.c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	a.c.SetToken("")
	return err
}
