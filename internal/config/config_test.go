package config

import (
	"testing"
	"time"
)

func TestLoadMatchRevealDate(t *testing.T) {
	t.Run("valid value is parsed to UTC", func(t *testing.T) {
		t.Setenv("MATCH_REVEAL_DATE", "2026-02-13T20:00:00-05:00")

		cfg := Load()
		if cfg.MatchRevealDate == nil {
			t.Fatal("MatchRevealDate is nil")
		}
		want := time.Date(2026, 2, 14, 1, 0, 0, 0, time.UTC)
		if !cfg.MatchRevealDate.Equal(want) {
			t.Errorf("MatchRevealDate = %v, want %v", cfg.MatchRevealDate, want)
		}
	})

	t.Run("default applies when unset", func(t *testing.T) {
		t.Setenv("MATCH_REVEAL_DATE", "")

		cfg := Load()
		if cfg.MatchRevealDate == nil {
			t.Fatal("MatchRevealDate is nil, want the default reveal date")
		}
	})

	t.Run("malformed value leaves it nil", func(t *testing.T) {
		t.Setenv("MATCH_REVEAL_DATE", "02/13/2026 8pm")

		cfg := Load()
		if cfg.MatchRevealDate != nil {
			t.Errorf("MatchRevealDate = %v, want nil for malformed input", cfg.MatchRevealDate)
		}
	})
}

func TestValidateProviderCredentials(t *testing.T) {
	cfg := Load()
	cfg.EmailProvider = "sendgrid"
	cfg.SendGridAPIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("sendgrid without an API key should fail validation")
	}

	cfg = Load()
	cfg.SMSProvider = "twilio"
	cfg.TwilioAccountSID = ""
	if err := cfg.Validate(); err == nil {
		t.Error("twilio without credentials should fail validation")
	}
}

func TestValidateProductionDefaults(t *testing.T) {
	cfg := Load()
	cfg.Environment = "production"
	if err := cfg.Validate(); err == nil {
		t.Error("production on default secrets should fail validation")
	}
}
