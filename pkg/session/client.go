// Package session implements the client side of the tutorial platform:
// an HTTP API client plus an explicit session object that mirrors the
// server's view of "current authenticated user". There is no package-level
// state; callers construct a Session and pass it to whatever owns the UI
// lifecycle.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error kinds surfaced by the client. Callers match on these with
// errors.Is — never on message text.
var ErrValidation = errors.New("invalid input")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrNotFound = errors.New("not found")

const defaultTimeout = 10 * time.Second

// User is the client-side mirror of the server's user representation.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Profile   *Profile  `json:"profile,omitempty"`
}

// Profile mirrors the server's profile representation.
type Profile struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Website     string `json:"website,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// AuthResult is the outcome of a successful signup or signin.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Client is a thin HTTP client for the platform API. Every call takes a
// context so in-flight requests can be cancelled on teardown; the
// underlying http.Client carries a request timeout so a hung server can
// never leave the UI loading forever.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResponse struct {
	User *User `json:"user"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/signup", "", credentialsRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/signin", "", credentialsRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out meResponse
	err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out)
	if err != nil {
		// A 401 here means the session is gone, not that a password
		// was wrong.
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return out.User, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return apiError(resp.StatusCode, envelope.Error)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError maps a status code to an error kind, keeping the server message
// for display but never for matching.
func apiError(status int, message string) error {
	var kind error
	switch status {
	case http.StatusBadRequest:
		kind = ErrValidation
	case http.StatusUnauthorized:
		kind = ErrInvalidCredentials
	case http.StatusConflict:
		kind = ErrUserExists
	case http.StatusNotFound:
		kind = ErrNotFound
	default:
		return fmt.Errorf("server error (%d): %s", status, message)
	}
	if message == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, message)
}
