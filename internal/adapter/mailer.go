// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-invoice-tracker/internal/config"
	"github.com/MKhiriev/go-invoice-tracker/internal/logger"
	"github.com/MKhiriev/go-invoice-tracker/internal/utils"
	"github.com/MKhiriev/go-invoice-tracker/models"
)

const sendPath = "/emails"

// NewMailer returns an HTTP mailer when cfg.APIURL is set and a logging
// mailer otherwise.
func NewMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if strings.TrimSpace(cfg.APIURL) == "" {
		logger.Warn().Msg("mail api url is not configured, confirmation links will only be logged")
		return NewLogMailer(logger), nil
	}
	return NewHTTPMailer(cfg, logger)
}

type httpMailer struct {
	client *utils.HTTPClient
	apiKey string
	from   string

	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] that posts JSON messages to
// {APIURL}/emails with the API key as a bearer token.
func NewHTTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api url: %w", err)
	}

	return &httpMailer{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.APIKey,
		from:   cfg.From,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send implements [Mailer].
func (m *httpMailer) Send(ctx context.Context, msg models.MailMessage) error {
	if msg.To == "" {
		return ErrEmptyRecipient
	}

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sendRequest{
			From:    m.from,
			To:      []string{msg.To},
			Subject: msg.Subject,
			Text:    msg.Text,
		})
	if m.apiKey != "" {
		req.SetAuthToken(m.apiKey)
	}

	resp, err := req.Post(sendPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Str("func", "httpMailer.Send").Str("to", msg.To).Msg("mail accepted")
	return nil
}

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that writes every message to the log
// instead of delivering it.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

// Send implements [Mailer].
func (m *logMailer) Send(ctx context.Context, msg models.MailMessage) error {
	if msg.To == "" {
		return ErrEmptyRecipient
	}

	m.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Msg("mail delivery disabled, message logged")
	return nil
}
