package scan

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	UnknownAddress    = "unknown"
	fingerprintLength = 16
)

// ClientAddress picks the first hop of X-Forwarded-For, then X-Real-IP.
func ClientAddress(md Metadata) string {
	if md.ForwardedFor != "" {
		first, _, _ := strings.Cut(md.ForwardedFor, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(md.RealIP); ip != "" {
		return ip
	}
	return UnknownAddress
}

// Fingerprint is a truncated SHA-256 of the address. The raw address is never stored.
func Fingerprint(address string) string {
	sum := sha256.Sum256([]byte(address))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}
