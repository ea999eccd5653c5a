package qrcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	ShortCodeLength   = 8
	shortCodeAttempts = 5
	alphabet          = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// NewShortCode returns a random base62 code of ShortCodeLength characters.
func NewShortCode() (string, error) {
	buf := make([]byte, ShortCodeLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// IsShortCode reports whether s could have been produced by NewShortCode.
func IsShortCode(s string) bool {
	if len(s) != ShortCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') {
			return false
		}
	}
	return true
}
