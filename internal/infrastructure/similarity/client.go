package similarity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrUnavailable = errors.New("similarity service unavailable")

type similarityRequest struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

type similarityResponse struct {
	Similarity float64 `json:"similarity"`
}

// Client calls the external semantic similarity service. Scores are
// cosine-style values in [0, 1].
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 1500 * time.Millisecond
	}
	http := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(baseURL), "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

func (c *Client) Similarity(ctx context.Context, a, b string) (float64, error) {
	if c == nil || c.http == nil {
		return 0, ErrUnavailable
	}

	var out similarityResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(similarityRequest{TextA: a, TextB: b}).
		SetResult(&out).
		Post("/v1/similarity")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}
	if out.Similarity < 0 || out.Similarity > 1 {
		return 0, fmt.Errorf("similarity out of range: %f", out.Similarity)
	}
	return out.Similarity, nil
}
