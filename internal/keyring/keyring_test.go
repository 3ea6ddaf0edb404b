package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetWebhookToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetWebhookToken("  s3cr3t-token "); err != nil {
		t.Fatalf("SetWebhookToken() failed: %v", err)
	}

	got, err := GetWebhookToken()
	if err != nil {
		t.Fatalf("GetWebhookToken() failed: %v", err)
	}
	if got != "s3cr3t-token" {
		t.Errorf("GetWebhookToken() = %q, want %q", got, "s3cr3t-token")
	}
}

func TestSetWebhookTokenInvalid(t *testing.T) {
	gokeyring.MockInit()

	for _, token := range []string{"", "   ", "two words"} {
		if err := SetWebhookToken(token); err == nil {
			t.Errorf("SetWebhookToken(%q) should return an error", token)
		}
	}
}

func TestGetWebhookTokenNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteWebhookToken()

	if _, err := GetWebhookToken(); err != ErrNotFound {
		t.Errorf("GetWebhookToken() error = %v, want %v", err, ErrNotFound)
	}

	token, err := OptionalWebhookToken()
	if err != nil || token != "" {
		t.Errorf("OptionalWebhookToken() = %q, %v; want empty, nil", token, err)
	}
}

func TestDeleteWebhookToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetWebhookToken("abc123"); err != nil {
		t.Fatalf("SetWebhookToken() failed: %v", err)
	}
	if err := DeleteWebhookToken(); err != nil {
		t.Fatalf("DeleteWebhookToken() failed: %v", err)
	}
	if _, err := GetWebhookToken(); err != ErrNotFound {
		t.Errorf("after delete, GetWebhookToken() error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteWebhookToken(); err != ErrNotFound {
		t.Errorf("second DeleteWebhookToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestMask(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"abc":        "***",
		"abcdefgh":   "****efgh",
		"tok_123456": "******3456",
	}
	for in, want := range tests {
		if got := Mask(in); got != want {
			t.Errorf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
