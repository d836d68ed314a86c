// Package crm pushes order lifecycle events to the external CRM system.
// Delivery is best effort: every attempt and its outcome is recorded in the
// sync audit log, and failures never propagate into the business operation
// that produced the event.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/adapters/out/postgres/syncrepo"
	"dispatch/internal/core/ports"
)

const syncTimeout = 5 * time.Second

// attemptRecorder persists sync attempt outcomes for the audit trail.
type attemptRecorder interface {
	Add(ctx context.Context, attempt syncrepo.SyncAttempt) error
}

// SyncTrigger delivers lifecycle events to the CRM over HTTP and records
// every attempt. Implements ports.SyncTrigger.
type SyncTrigger struct {
	baseURL  string
	client   *http.Client
	recorder attemptRecorder
	logger   *slog.Logger
}

// NewSyncTrigger creates a CRM sync trigger posting to baseURL.
func NewSyncTrigger(baseURL string, recorder attemptRecorder, logger *slog.Logger) *SyncTrigger {
	return &SyncTrigger{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: syncTimeout},
		recorder: recorder,
		logger:   logger,
	}
}

// Sync delivers the event to the CRM and records the attempt. Failures are
// audited and swallowed.
func (t *SyncTrigger) Sync(ctx context.Context, event ports.SyncEvent) {
	body, err := json.Marshal(event.Payload)
	if err != nil {
		t.record(ctx, event, "", false, err)
		return
	}

	err = t.post(ctx, event.Payload.Kind(), body)
	t.record(ctx, event, string(body), err == nil, err)
}

func (t *SyncTrigger) post(ctx context.Context, kind string, body []byte) error {
	url := t.baseURL + "/events/" + kind

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("crm responded %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}

func (t *SyncTrigger) record(ctx context.Context, event ports.SyncEvent, payload string, success bool, cause error) {
	attempt := syncrepo.SyncAttempt{
		OrderID:     event.OrderID,
		Kind:        event.Payload.Kind(),
		Payload:     payload,
		Success:     success,
		AttemptedAt: time.Now().UTC(),
	}
	if cause != nil {
		attempt.Error = cause.Error()
		t.logger.Warn("crm sync failed",
			"order_id", event.OrderID.String(),
			"kind", attempt.Kind,
			"error", cause)
	}

	if err := t.recorder.Add(ctx, attempt); err != nil {
		t.logger.Error("failed to record crm sync attempt",
			"order_id", event.OrderID.String(),
			"kind", attempt.Kind,
			"error", err)
	}
}
