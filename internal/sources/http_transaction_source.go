// Package sources holds the fetchers that feed the transaction snapshot
// store from outside the database.
package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"construction-dashboard/internal/config"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/services"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	transactionsPath = "/transactions"
	maxPayloadBytes  = 32 << 20
)

var (
	ErrUpstreamStatus  = errors.New("unexpected upstream status")
	ErrPayloadTooLarge = errors.New("upstream payload too large")
)

// HTTPTransactionSource fetches the transaction collection from an upstream
// JSON endpoint. Every record passes through the ingestion boundary before
// it reaches a snapshot.
type HTTPTransactionSource struct {
	client   *retryablehttp.Client
	baseURL  string
	ingest   services.IngestServiceInterface
	maxBytes int64
}

func NewHTTPTransactionSource(cfg config.SourceConfig, ingest services.IngestServiceInterface) *HTTPTransactionSource {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = cfg.RetryWaitMin
	client.RetryWaitMax = cfg.RetryWaitMax
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = slog.Default()

	return &HTTPTransactionSource{
		client:   client,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		ingest:   ingest,
		maxBytes: maxPayloadBytes,
	}
}

// Fetch matches services.Fetcher
func (s *HTTPTransactionSource) Fetch(ctx context.Context) ([]models.Transaction, error) {
	start := time.Now()
	url := s.baseURL + transactionsPath

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUpstreamStatus, url, resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(payload)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %s sent more than %d bytes", ErrPayloadTooLarge, url, s.maxBytes)
	}

	txns, err := s.ingest.DecodeTransactions(payload)
	if err != nil {
		return nil, fmt.Errorf("upstream payload rejected: %w", err)
	}

	slog.Debug("Fetched upstream transactions",
		"url", url,
		"count", len(txns),
		"duration_ms", time.Since(start).Milliseconds())

	return txns, nil
}
