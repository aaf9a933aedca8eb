package sms

import (
	"context"
	"testing"

	"github.com/nivaran/nivaran_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:           "",
			SecretKey:        "",
			BookedTemplateID: "test-template",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestSendTokenIssued_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}

	err := client.SendTokenIssued(context.Background(), "+919812345678", "A007", "09:15 AM")
	if err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSend_Validation(t *testing.T) {
	client := &Client{enabled: true, bookedTemplateID: ""}

	tests := []struct {
		name  string
		phone string
	}{
		{"missing phone", ""},
		{"missing template", "+919812345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.SendTokenIssued(context.Background(), tt.phone, "A001", "09:00 AM"); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
