package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const SignatureHeader = "X-Webhook-Signature"

// WebhookWorker drains the queue and delivers events over HTTP
type WebhookWorker struct {
	queue      Queue
	logger     *logrus.Logger
	cfg        *config.Config
	metrics    *metrics.Metrics
	httpClient *http.Client
	done       chan struct{}
}

func NewWebhookWorker(queue Queue, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) *WebhookWorker {
	return &WebhookWorker{
		queue:   queue,
		logger:  logger,
		cfg:     cfg,
		metrics: m,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		done: make(chan struct{}),
	}
}

// Start runs the delivery loop in a goroutine until ctx is cancelled
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		defer close(w.done)
		for {
			payload, err := w.queue.Pop(ctx)
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}
			if err != nil {
				w.logger.WithError(err).Error("Failed to pop webhook event from queue")
				if !w.sleep(ctx, w.cfg.WebhookTimeout) {
					return
				}
				continue
			}

			var event WebhookEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal webhook event")
				continue
			}

			w.processWebhookEvent(ctx, event, payload)
		}
	}()
}

// Done is closed once the delivery loop has exited
func (w *WebhookWorker) Done() <-chan struct{} {
	return w.done
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event WebhookEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{"event_id": event.ID, "event_type": event.Type})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			w.metrics.WebhookDelivered(true)
			log.Info("Webhook delivered successfully.")
			return
		}

		left := maxRetries - 1 - i
		log.WithError(err).Warnf("Webhook delivery failed. Retries left: %d", left)
		if left == 0 {
			break
		}
		if !w.sleep(ctx, delay) {
			return
		}
		delay *= 2
	}

	w.metrics.WebhookDelivered(false)
	log.Errorf("Failed to deliver webhook for event after %d retries.", maxRetries)
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("unexpected status " + resp.Status)
	}
	return nil
}

// sleep waits for d and reports false if ctx ended first
func (w *WebhookWorker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 signs data with secret, hex encoded
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
