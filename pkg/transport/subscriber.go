package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lexiconlabs/counsel/pkg/genui"
	"github.com/lexiconlabs/counsel/pkg/logger"
)

// Subscriber reads an agent turn's event stream over HTTP. The agent
// delivers newline-delimited JSON, one StreamEvent per line, reliable and
// in order per stream.
type Subscriber struct {
	baseURL    string
	streamPath string
	httpClient *http.Client
}

// NewSubscriber creates a subscriber against the agent service. streamPath
// is a format string taking the turn id, e.g. "/api/turns/%s/events".
// The timeout bounds connecting and waiting for response headers only; a
// healthy turn may stream for longer than any fixed timeout, so the body
// read lives until the server closes it or ctx cancels.
func NewSubscriber(baseURL, streamPath string, timeout time.Duration) *Subscriber {
	return &Subscriber{
		baseURL:    baseURL,
		streamPath: streamPath,
		httpClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: timeout,
			},
		},
	}
}

// Subscribe opens the event stream for one agent turn and returns a
// channel of decoded events. The channel closes when the server ends the
// stream or ctx is cancelled. Lines that fail to decode are logged and
// skipped; the engine downstream applies the same lenience to event
// content, so a garbled line never ends the session.
func (s *Subscriber) Subscribe(ctx context.Context, turnID string) (<-chan genui.StreamEvent, error) {
	url := s.baseURL + fmt.Sprintf(s.streamPath, turnID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("subscribe failed with status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("subscribe failed with status %d: %s", resp.StatusCode, string(body))
	}

	events := make(chan genui.StreamEvent, 100)
	go s.readStream(ctx, resp.Body, events, turnID)

	return events, nil
}

func (s *Subscriber) readStream(ctx context.Context, body io.ReadCloser, events chan<- genui.StreamEvent, turnID string) {
	defer close(events)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			logger.Debug("Event stream for turn %s cancelled: %v", turnID, ctx.Err())
			return
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev genui.StreamEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			logger.Warn("Skipping undecodable event line for turn %s: %v", turnID, err)
			continue
		}

		events <- ev
	}

	if err := scanner.Err(); err != nil {
		logger.Error("Event stream for turn %s ended with read error: %v", turnID, err)
	}
}
