// Package sms sends best-effort notification messages. Dispatch failures
// are logged and never abort the surrounding transaction.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/config"
)

// Dispatcher delivers one message to one recipient.
type Dispatcher interface {
	Send(ctx context.Context, recipient, message string) error
}

// GatewayDispatcher posts messages to an IPPanel-style HTTP gateway.
type GatewayDispatcher struct {
	url    string
	apiKey string
	sender string
	client *http.Client
}

func NewGatewayDispatcher(cfg config.SMSConfig) *GatewayDispatcher {
	return &GatewayDispatcher{
		url:    cfg.GatewayURL,
		apiKey: cfg.APIKey,
		sender: cfg.Sender,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type gatewayRequest struct {
	Sender    string   `json:"sender"`
	Recipient []string `json:"recipient"`
	Message   string   `json:"message"`
}

func (d *GatewayDispatcher) Send(ctx context.Context, recipient, message string) error {
	body, err := json.Marshal(gatewayRequest{
		Sender:    d.sender,
		Recipient: []string{recipient},
		Message:   message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "AccessKey "+d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}

// NoopDispatcher drops every message; used when SMS is disabled.
type NoopDispatcher struct{}

func (NoopDispatcher) Send(ctx context.Context, recipient, message string) error {
	return nil
}

// RecordingDispatcher wraps another dispatcher and keeps one audit row per
// attempt in sms_logs. The audit write is best-effort and never masks the
// send outcome.
type RecordingDispatcher struct {
	inner Dispatcher
	db    *gorm.DB
}

func NewRecordingDispatcher(inner Dispatcher, db *gorm.DB) *RecordingDispatcher {
	return &RecordingDispatcher{inner: inner, db: db}
}

func (d *RecordingDispatcher) Send(ctx context.Context, recipient, message string) error {
	err := d.inner.Send(ctx, recipient, message)
	status, errMessage := "sent", ""
	if err != nil {
		status, errMessage = "failed", err.Error()
	}
	d.db.WithContext(ctx).Exec(
		`INSERT INTO sms_logs (recipient, message, status, error_message) VALUES (?, ?, ?, ?)`,
		recipient, message, status, errMessage,
	)
	return err
}

// LoggingDispatcher wraps another dispatcher and records the outcome, so
// callers can fire-and-forget.
type LoggingDispatcher struct {
	inner Dispatcher
	log   zerolog.Logger
}

func NewLoggingDispatcher(inner Dispatcher, log zerolog.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{inner: inner, log: log}
}

func (d *LoggingDispatcher) Send(ctx context.Context, recipient, message string) error {
	if err := d.inner.Send(ctx, recipient, message); err != nil {
		d.log.Error().Err(err).Str("recipient", recipient).Msg("sms dispatch failed")
		return err
	}
	d.log.Info().Str("recipient", recipient).Msg("sms dispatched")
	return nil
}
