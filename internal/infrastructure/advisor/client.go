package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"AuditScanner/internal/domain"
	"AuditScanner/internal/ports"
)

// Client talks to the advising inference service.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.Advisor = (*Client)(nil)

// NewClient creates a reusable HTTP client. Inference over the full student
// context is slow, hence the generous timeout.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 120 * time.Second},
	}
}

type askRequest struct {
	Prompt  string                 `json:"prompt"`
	Context domain.AdvisingContext `json:"context"`
}

// Recommend posts the student context and decodes the structured advice.
func (c *Client) Recommend(ctx context.Context, student domain.AdvisingContext) (*domain.Advice, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("advisor endpoint is not configured")
	}

	payload, err := json.Marshal(askRequest{
		Prompt:  "Recommend programs and next steps for this course history.",
		Context: student,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal context: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisor returned %s", resp.Status)
	}

	var advice domain.Advice
	if err := json.NewDecoder(resp.Body).Decode(&advice); err != nil {
		return nil, fmt.Errorf("decode advice: %w", err)
	}
	return &advice, nil
}
