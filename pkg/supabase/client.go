// Package supabase is a minimal client for the Supabase Auth (GoTrue) API.
// Only the password grant, signup and user lookup are covered.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to one Supabase project
type Client struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(url, apiKey string) *Client {
	return &Client{
		URL:        strings.TrimRight(url, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is returned by a successful sign-in. Signups that require email
// confirmation return a Session with empty tokens.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// Error is a non-2xx answer from the Auth API
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase auth: %d %s", e.Status, e.Message)
}

// Unauthorized reports whether the API rejected the credentials
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusBadRequest || e.Status == http.StatusUnauthorized
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "",
		map[string]string{"email": email, "password": password}, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	// The signup endpoint answers with either a session or a bare user,
	// depending on whether email confirmation is enabled.
	var raw struct {
		Session
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "",
		map[string]string{"email": email, "password": password}, &raw)
	if err != nil {
		return nil, err
	}
	s := raw.Session
	if s.User.ID == "" {
		s.User = User{ID: raw.ID, Email: raw.Email}
	}
	return &s, nil
}

// GetUser resolves an access token to its user
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer == "" {
		bearer = c.APIKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase auth request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// errorMessage picks whichever message field GoTrue used for this error
func errorMessage(data []byte) string {
	var e struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(data, &e) == nil {
		for _, m := range []string{e.ErrorDescription, e.Msg, e.Message} {
			if m != "" {
				return m
			}
		}
	}
	return strings.TrimSpace(string(data))
}
