package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/config"
	apperrors "github.com/ShahJahanApurbo/decoration-store/pkg/errors"
)

type Client struct {
	storeDomain string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Storefront API GraphQL client
func NewClient(cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Normalize store domain - remove https://, http://, and trailing slashes
	storeDomain := cfg.StoreDomain
	storeDomain = strings.TrimPrefix(storeDomain, "https://")
	storeDomain = strings.TrimPrefix(storeDomain, "http://")
	storeDomain = strings.TrimSuffix(storeDomain, "/")

	return &Client{
		storeDomain: storeDomain,
		accessToken: cfg.AccessToken,
		apiVersion:  cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse represents a GraphQL response
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL error
type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// Configured reports whether both the store domain and the access token
// are present.
func (c *Client) Configured() bool {
	return c.storeDomain != "" && c.accessToken != ""
}

// Execute sends one GraphQL query to the Storefront API. Exactly one
// attempt, no retries; callers build their own state around a single call.
//
// Failure classification:
//   - *errors.ErrNotConfigured: credentials missing, no network call made
//   - *errors.ErrUpstream: request failed or answered non-2xx
//   - *errors.ErrQueryRejected: 2xx but non-empty GraphQL error list
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}) (*GraphQLResponse, error) {
	if !c.Configured() {
		var missing []string
		if c.storeDomain == "" {
			missing = append(missing, "SHOPIFY_STORE_DOMAIN")
		}
		if c.accessToken == "" {
			missing = append(missing, "SHOPIFY_STOREFRONT_ACCESS_TOKEN")
		}
		return nil, &apperrors.ErrNotConfigured{Missing: missing}
	}

	url := fmt.Sprintf("https://%s/api/%s/graphql.json", c.storeDomain, c.apiVersion)

	reqBody := GraphQLRequest{
		Query:     query,
		Variables: variables,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Storefront API request failed", zap.Error(err))
		return nil, &apperrors.ErrUpstream{StatusCode: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Storefront API returned error status",
			zap.Int("status", resp.StatusCode),
		)
		return nil, &apperrors.ErrUpstream{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var graphQLResp GraphQLResponse
	if err := json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, body: %s", err, string(body))
	}

	// Data alongside errors is still a failure, never a partial success.
	if len(graphQLResp.Errors) > 0 {
		errorMessages := make([]string, len(graphQLResp.Errors))
		for i, gqlErr := range graphQLResp.Errors {
			errorMessages[i] = gqlErr.Message
		}
		c.logger.Warn("Storefront API query rejected",
			zap.Strings("errors", errorMessages),
		)
		return nil, &apperrors.ErrQueryRejected{Messages: errorMessages}
	}

	return &graphQLResp, nil
}
