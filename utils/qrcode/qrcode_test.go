package qrcode

import (
	"strings"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if !strings.HasPrefix(token, "WN") {
			t.Fatalf("GenerateToken() = %s, want WN prefix", token)
		}
		if strings.ContainsAny(token, "+/=") {
			t.Fatalf("GenerateToken() = %s, token must be url-safe", token)
		}
		if seen[token] {
			t.Fatalf("GenerateToken() produced duplicate token %s", token)
		}
		seen[token] = true
	}
}

func TestGenerateImage(t *testing.T) {
	image, err := GenerateImage("WNsometoken")
	if err != nil {
		t.Fatalf("GenerateImage() error = %v", err)
	}
	if !strings.HasPrefix(image, "data:image/png;base64,") {
		t.Fatalf("GenerateImage() = %.40s, want png data URI", image)
	}
	if len(image) <= len("data:image/png;base64,") {
		t.Fatal("GenerateImage() payload is empty")
	}
}
