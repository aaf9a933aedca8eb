package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"

	"github.com/nivaran/nivaran_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client            *smsir.Client
	enabled           bool
	bookedTemplateID  string
	skippedTemplateID string
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:            client,
		enabled:           true,
		bookedTemplateID:  cfg.SMSIR.BookedTemplateID,
		skippedTemplateID: cfg.SMSIR.SkippedTemplateID,
	}, nil
}

// SendTokenIssued notifies a patient of their token number and slot time
// right after a booking is committed. No-op when SMS is disabled.
func (c *Client) SendTokenIssued(ctx context.Context, phone, token, slotTime string) error {
	return c.send(ctx, phone, c.bookedTemplateID, []smsir.UltraFastParameter{
		{Key: "token", Value: token},
		{Key: "time", Value: slotTime},
	})
}

// SendSkipped notifies a patient that their visit was skipped and names the
// latest instant they may still rejoin.
func (c *Client) SendSkipped(ctx context.Context, phone, token, rejoinBy string) error {
	return c.send(ctx, phone, c.skippedTemplateID, []smsir.UltraFastParameter{
		{Key: "token", Value: token},
		{Key: "rejoin_by", Value: rejoinBy},
	})
}

func (c *Client) send(ctx context.Context, phone, templateID string, params []smsir.UltraFastParameter) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}
	if phone == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     phone,
		TemplateID: templateID,
		Parameters: params,
	}

	_, err := c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
