// Package unsplash implements the generation.ImageSearcher interface
// against the Unsplash random-photo API.
package unsplash

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/slidegen/slidegen-api/internal/generation"
)

const (
	randomPhotoEndpoint = "https://api.unsplash.com/photos/random"

	requestTimeout = 10 * time.Second
)

// Client resolves image search queries to Unsplash photo URLs. Without an
// access key the client is unconfigured and every lookup resolves to absent
// without calling out.
type Client struct {
	httpClient *resty.Client
	endpoint   string
	accessKey  string
	logger     *slog.Logger
}

// Ensure Client implements the generation.ImageSearcher interface
var _ generation.ImageSearcher = (*Client)(nil)

// NewClient creates an Unsplash client. An empty access key yields an
// unconfigured client whose lookups all resolve to absent.
// If logger is nil, a default logger will be used.
func NewClient(accessKey string, logger *slog.Logger) *Client {
	return NewClientWithEndpoint(accessKey, randomPhotoEndpoint, logger)
}

// NewClientWithEndpoint creates a client against a custom endpoint.
// Intended for tests.
func NewClientWithEndpoint(accessKey, endpoint string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient: resty.New().SetTimeout(requestTimeout),
		endpoint:   endpoint,
		accessKey:  accessKey,
		logger:     logger.With(slog.String("component", "unsplash_client")),
	}
}

// randomPhotoResponse is the subset of the Unsplash response we consume.
type randomPhotoResponse struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

// RandomImage implements generation.ImageSearcher. It resolves the query to
// a landscape photo URL, or returns an empty result when the client is
// unconfigured. Errors are returned for the caller to swallow; images are
// cosmetic and never fail a generation.
func (c *Client) RandomImage(ctx context.Context, query string) (string, error) {
	if c.accessKey == "" {
		c.logger.DebugContext(ctx, "unsplash access key not configured, skipping image fetch")
		return "", nil
	}

	var result randomPhotoResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+c.accessKey).
		SetQueryParams(map[string]string{
			"query":       query,
			"orientation": "landscape",
		}).
		SetResult(&result).
		Get(c.endpoint)

	if err != nil {
		return "", fmt.Errorf("failed to query Unsplash API: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("Unsplash API error (status %d)", resp.StatusCode())
	}

	return result.URLs.Regular, nil
}
