// Package client is the Go SDK for the onboarding API: a typed HTTP
// client, durable credential storage, a session controller and a
// profile form controller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finvest_backend/internal/services/dto"
)

// APIError is a non-2xx response decoded from the server's error
// envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d [%s]: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// APIClient is a typed HTTP client for the onboarding API. The bearer
// token, when set, is attached to every request.
type APIClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token for subsequent requests; an empty
// string clears it.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

func (c *APIClient) Register(ctx context.Context, name, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/register", &dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/login", &dto.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) GoogleLogin(ctx context.Context, credential string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/google", &dto.GoogleLoginRequest{
		Credential: credential,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Verify(ctx context.Context) (*dto.VerifyResponse, error) {
	var out dto.VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) GetDetails(ctx context.Context) (*dto.DetailsEnvelope, error) {
	var out dto.DetailsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/user/details", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CreateDetails(ctx context.Context, req *dto.UserDetailsRequest) (*dto.DetailsMutationResponse, error) {
	var out dto.DetailsMutationResponse
	if err := c.do(ctx, http.MethodPost, "/api/user/details", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) UpdateDetails(ctx context.Context, req *dto.UserDetailsRequest) (*dto.DetailsMutationResponse, error) {
	var out dto.DetailsMutationResponse
	if err := c.do(ctx, http.MethodPut, "/api/user/details", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(status int, raw []byte) *APIError {
	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	apiErr := &APIError{Status: status, Message: http.StatusText(status)}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		apiErr.Code = envelope.Error.Code
	}
	return apiErr
}
