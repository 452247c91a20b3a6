// Package parser is the boundary to the external AI extraction service:
// it forwards raw file bytes and hands back the structured fields the
// service returns. No retries and no timeout beyond the transport default,
// so a slow upstream stalls the calling request.
package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"

	"resume-vault/internal/resumes"
	"resume-vault/internal/shared/metrics"
	"resume-vault/internal/shared/telemetry"
)

// ErrUpstream reports a non-success response or connection failure from
// the parsing service.
var ErrUpstream = errors.New("parsing service failed")

// Client posts files to the parsing endpoint as multipart form data.
type Client struct {
	http     *resty.Client
	endpoint string
}

// NewClient constructs a Client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		http:     resty.New(),
		endpoint: endpoint,
	}
}

type upstreamError struct {
	Error string `json:"error"`
}

// Parse sends the file and decodes the JSON object of extracted fields.
func (c *Client) Parse(ctx context.Context, fileName string, r io.Reader) (resumes.ParsedData, error) {
	metrics.IncParseStarted()
	start := time.Now()

	var parsed resumes.ParsedData
	var upstream upstreamError

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", fileName, r).
		SetResult(&parsed).
		SetError(&upstream).
		Post(c.endpoint)

	duration := metrics.SinceMillis(start)
	metrics.ObserveParseDurationMs(duration)

	if err != nil {
		metrics.IncParseFailed()
		telemetry.Error("parser.request_failed", map[string]any{
			"endpoint":    c.endpoint,
			"file_name":   fileName,
			"duration_ms": duration,
			"error":       err.Error(),
		})
		return resumes.ParsedData{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.IsError() {
		metrics.IncParseFailed()
		telemetry.Error("parser.upstream_error", map[string]any{
			"endpoint":    c.endpoint,
			"file_name":   fileName,
			"status":      resp.StatusCode(),
			"duration_ms": duration,
			"error":       upstream.Error,
		})
		if upstream.Error != "" {
			return resumes.ParsedData{}, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), upstream.Error)
		}
		return resumes.ParsedData{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	metrics.IncParseSucceeded()
	telemetry.Info("parser.complete", map[string]any{
		"endpoint":    c.endpoint,
		"file_name":   fileName,
		"duration_ms": duration,
	})
	return parsed, nil
}

var _ resumes.Parser = (*Client)(nil)
