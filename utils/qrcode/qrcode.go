package qrcode

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const (
	tokenPrefix = "WN"
	tokenBytes  = 16
)

// GenerateToken returns an opaque url-safe pickup token. The token is
// the only credential needed at the handover desk, so it comes from
// crypto/rand, never from the claim id.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return tokenPrefix + base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateImage renders the token as a PNG data URI the client can drop
// straight into an <img> tag.
func GenerateImage(data string) (string, error) {
	png, err := qr.Encode(data, qr.Low, 256)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
