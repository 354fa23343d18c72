// Package jibit provides a minimal HTTP client for the Jibit identity
// verification API (national code / mobile matching).
package jibit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pezeshkyar/checkup_backend/config"
)

var (
	ErrUnauthorized       = errors.New("jibit: invalid api credentials")
	ErrNotMatched         = errors.New("jibit: identity does not match")
	ErrInvalidInput       = errors.New("jibit: invalid national code or mobile number")
	ErrUnexpectedResponse = errors.New("jibit: unexpected response from provider")
)

// Client is a lightweight Jibit IDE HTTP client. Access tokens are
// fetched lazily and cached until shortly before expiry.
type Client struct {
	apiKey     string
	secretKey  string
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// New creates a Client from config. Uses sandbox endpoints when cfg.Sandbox is true.
func New(cfg config.JibitConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://napi.jibit.ir/ide"
	}
	if cfg.Sandbox {
		baseURL = "https://napi.jibit.ir/ide-sandbox"
	}
	return &Client{
		apiKey:     cfg.APIKey,
		secretKey:  cfg.SecretKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// MatchNationalCodeMobile checks that a mobile number is registered to the
// holder of the given national code (Shahkar matching).
func (c *Client) MatchNationalCodeMobile(ctx context.Context, nationalCode, mobile string) (bool, error) {
	if nationalCode == "" || mobile == "" {
		return false, ErrInvalidInput
	}

	q := url.Values{}
	q.Set("nationalCode", nationalCode)
	q.Set("mobileNumber", mobile)

	var resp struct {
		Matched bool   `json:"matched"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	if err := c.get(ctx, "/v1/services/matching?"+q.Encode(), &resp); err != nil {
		return false, fmt.Errorf("jibit matching: %w", err)
	}

	return resp.Matched, nil
}

// Identity is the civil registry record returned for a national code.
type Identity struct {
	FirstName string
	LastName  string
	Alive     bool
}

// LookupIdentity fetches the civil registry identity for a national code
// and birth date (format: yyyyMMdd, Jalali).
func (c *Client) LookupIdentity(ctx context.Context, nationalCode, birthDate string) (Identity, error) {
	if nationalCode == "" || birthDate == "" {
		return Identity{}, ErrInvalidInput
	}

	q := url.Values{}
	q.Set("nationalCode", nationalCode)
	q.Set("birthDate", birthDate)

	var resp struct {
		IdentityInfo struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Alive     bool   `json:"alive"`
		} `json:"identityInfo"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	if err := c.get(ctx, "/v1/services/identity/similarity?"+q.Encode(), &resp); err != nil {
		return Identity{}, fmt.Errorf("jibit identity: %w", err)
	}

	if resp.IdentityInfo.FirstName == "" && resp.IdentityInfo.LastName == "" {
		return Identity{}, fmt.Errorf("%w (code=%s, msg=%s)", ErrNotMatched, resp.Code, resp.Message)
	}

	return Identity{
		FirstName: resp.IdentityInfo.FirstName,
		LastName:  resp.IdentityInfo.LastName,
		Alive:     resp.IdentityInfo.Alive,
	}, nil
}

// token returns a valid access token, refreshing it when needed.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	reqBody := map[string]string{
		"apiKey":    c.apiKey,
		"secretKey": c.secretKey,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/tokens/generate", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do token request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return "", ErrUnauthorized
	}

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", ErrUnexpectedResponse
	}

	// Jibit tokens live 24h; refresh well before that.
	c.accessToken = resp.AccessToken
	c.tokenExpiry = time.Now().Add(12 * time.Hour)

	return c.accessToken, nil
}

// get sends an authorized GET request to baseURL+path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return ErrInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w (status=%d)", ErrUnexpectedResponse, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
