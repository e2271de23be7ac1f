package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lexiconlabs/counsel/pkg/session"
)

// Client posts outbound interaction events to the agent service. It
// implements session.InteractionSender.
type Client struct {
	baseURL         string
	interactionPath string
	httpClient      *http.Client
}

func NewClient(baseURL, interactionPath string, timeout time.Duration) *Client {
	return &Client{
		baseURL:         baseURL,
		interactionPath: interactionPath,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SendInteraction posts one interaction event. Non-200 responses are
// surfaced as errors with the server's error body when it provides one.
func (c *Client) SendInteraction(ctx context.Context, ev session.InteractionEvent) error {
	reqBody, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}

	url := c.baseURL + c.interactionPath
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("interaction rejected with status %d", resp.StatusCode)
		}

		var errorResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errorResp) == nil && errorResp.Error != "" {
			return fmt.Errorf("interaction rejected with status %d: %s", resp.StatusCode, errorResp.Error)
		}
		return fmt.Errorf("interaction rejected with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

var _ session.InteractionSender = (*Client)(nil)
