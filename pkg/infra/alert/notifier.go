package alert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	SinkName = "alert_webhook"

	defaultMaxRetries = 3
)

type Config struct {
	URL        string
	Format     string
	MinLevel   risk.Category
	Headers    map[string]string
	MaxRetries int
	// Backoff is multiplied by the attempt number between retries.
	Backoff time.Duration
}

// Notifier posts an alert for every stored assessment at or above MinLevel.
type Notifier struct {
	cfg     Config
	client  httpx.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
}

func NewNotifier(cfg Config, client httpx.Client, breaker httpx.CircuitBreaker, logger *logrus.Logger) *Notifier {
	if !cfg.MinLevel.Valid() {
		cfg.MinLevel = risk.High
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	return &Notifier{cfg: cfg, client: client, breaker: breaker, logger: logger}
}

func (n *Notifier) Name() string {
	return SinkName
}

func (n *Notifier) Deliver(ctx context.Context, record *assessment.Record) error {
	if record.RiskLevel.Severity() < n.cfg.MinLevel.Severity() {
		return nil
	}
	body, err := FormatPayload(n.cfg.Format, NewEvent(record))
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}
	return n.breaker.Execute(func() error {
		return n.send(ctx, body)
	})
}

// send retries on transport errors and 5xx responses; 4xx is final.
func (n *Notifier) send(ctx context.Context, body []byte) error {
	var lastErr error
	for attempt := 0; attempt < n.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * n.cfg.Backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.URL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range n.cfg.Headers {
			req.Header.Set(k, v)
		}

		resp, err := n.client.Do(req)
		if err != nil {
			lastErr = err
			n.logger.WithError(err).WithField("attempt", attempt+1).Warn("alert webhook request failed")
			continue
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return fmt.Errorf("alert webhook rejected: HTTP %d", resp.StatusCode)
		}
		lastErr = fmt.Errorf("alert webhook server error: HTTP %d", resp.StatusCode)
	}
	return fmt.Errorf("alert webhook failed after %d attempts: %w", n.cfg.MaxRetries, lastErr)
}
