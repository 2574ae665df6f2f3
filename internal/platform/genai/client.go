// Package genai is a thin client for a hosted multimodal generation API.
// It sends a system instruction, a text prompt and optionally one media
// attachment, and returns the model's text reply.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoCandidates is returned when the API responds successfully but the
// response carries no generated text.
var ErrNoCandidates = errors.New("genai: response contained no candidates")

// Config holds the settings needed to reach the generation API.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// MediaPart is a binary attachment sent alongside the prompt.
type MediaPart struct {
	MIMEType string
	Data     []byte
}

// Request is a single generation request.
type Request struct {
	SystemInstruction string
	Prompt            string
	Media             *MediaPart
}

// Client calls the generation API over HTTP.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a generation client. The HTTP timeout defaults to
// 60 seconds when the config leaves it unset.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "genai").Logger(),
	}
}

// wire types for the generateContent endpoint

type apiRequest struct {
	SystemInstruction *apiContent  `json:"system_instruction,omitempty"`
	Contents          []apiContent `json:"contents"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *apiInlineData `json:"inline_data,omitempty"`
}

type apiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type apiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the request and returns the concatenated text of the
// first candidate. Transient failures (transport errors and 5xx statuses) are
// retried once after a short backoff.
func (c *Client) GenerateContent(ctx context.Context, req Request) (string, error) {
	body, err := c.buildBody(req)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.Model), url.QueryEscape(c.cfg.APIKey))

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(500 * time.Millisecond):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			c.logger.Warn().Err(lastErr).Msg("retrying generation request")
		}

		text, retryable, err := c.doRequest(ctx, endpoint, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", lastErr
}

func (c *Client) buildBody(req Request) ([]byte, error) {
	parts := []apiPart{{Text: req.Prompt}}
	if req.Media != nil {
		parts = append(parts, apiPart{
			InlineData: &apiInlineData{
				MIMEType: req.Media.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(req.Media.Data),
			},
		})
	}

	payload := apiRequest{
		Contents: []apiContent{{Parts: parts}},
	}
	if req.SystemInstruction != "" {
		payload.SystemInstruction = &apiContent{
			Parts: []apiPart{{Text: req.SystemInstruction}},
		}
	}
	return json.Marshal(payload)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, body []byte) (text string, retryable bool, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", true, fmt.Errorf("genai: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", true, fmt.Errorf("genai: reading response: %w", err)
	}

	if resp.StatusCode >= 500 {
		return "", true, fmt.Errorf("genai: server error: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("genai: unexpected status %d: %s", resp.StatusCode, truncate(respBody, 256))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", false, fmt.Errorf("genai: decoding response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", false, ErrNoCandidates
	}

	var buf bytes.Buffer
	for _, p := range parsed.Candidates[0].Content.Parts {
		buf.WriteString(p.Text)
	}
	return buf.String(), false, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
