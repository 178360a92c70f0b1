// Package submit sends the encoded application to the remote NOC endpoint
// and classifies the response for the state machine.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"nocflow/internal/wizard/encode"
)

var tracer = otel.Tracer("nocflow/internal/wizard/submit")

// Outcome classifies a submission attempt for the state machine. Only
// OutcomeSuccess resets the wizard; every other outcome preserves state so
// the applicant can resubmit without re-entering data.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	// OutcomeSessionExpired maps 401: the session is gone and the caller
	// must be handed to the auth collaborator for re-login.
	OutcomeSessionExpired Outcome = "session_expired"
	// OutcomeRejected maps 400 (or a 2xx body with success=false): the
	// server's message is surfaced verbatim.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed covers every other non-2xx status.
	OutcomeFailed Outcome = "failed"
)

// Receipt is the domain object returned on success.
type Receipt struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

// Result is a classified submission response.
type Result struct {
	Outcome Outcome
	Message string
	Receipt *Receipt
}

// Submitter dispatches an encoded payload. Satisfied by *Client; mocked in
// service tests.
type Submitter interface {
	Submit(ctx context.Context, payload *encode.Payload) (Result, error)
}

// Client posts multipart submissions to the configured endpoint. There is no
// retry or backoff: a failed submission is surfaced and the applicant
// resubmits manually.
type Client struct {
	http     *http.Client
	endpoint string
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient builds a submission client for the given endpoint URL.
func NewClient(endpoint string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: 60 * time.Second},
		endpoint: endpoint,
		logger:   logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// responseBody is the envelope the endpoint returns for both accepted and
// rejected submissions.
type responseBody struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    Receipt `json:"data"`
}

// Submit posts the payload. A transport failure returns an error; any HTTP
// response, success or not, returns a classified Result with a nil error.
func (c *Client) Submit(ctx context.Context, payload *encode.Payload) (Result, error) {
	ctx, span := tracer.Start(ctx, "noc.submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("payload.bytes", len(payload.Body))))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload.Body))
	if err != nil {
		return Result{}, fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", payload.ContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return Result{}, fmt.Errorf("submit application: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	var body responseBody
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		// Non-JSON error pages fall through to status classification.
		body = responseBody{}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if !body.Success {
			return Result{Outcome: OutcomeRejected, Message: messageOr(body.Message, "application was not accepted")}, nil
		}
		return Result{Outcome: OutcomeSuccess, Message: body.Message, Receipt: &body.Data}, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return Result{Outcome: OutcomeSessionExpired, Message: "session expired, please log in again"}, nil
	case resp.StatusCode == http.StatusBadRequest:
		return Result{Outcome: OutcomeRejected, Message: messageOr(body.Message, "submission rejected")}, nil
	default:
		c.logger.WarnContext(ctx, "submission endpoint returned unexpected status",
			"status", resp.StatusCode,
		)
		return Result{Outcome: OutcomeFailed, Message: "submission failed, please try again"}, nil
	}
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
