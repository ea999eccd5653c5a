package scan

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientAddress(t *testing.T) {
	tests := []struct {
		name     string
		md       Metadata
		expected string
	}{
		{name: "first forwarded hop", md: Metadata{ForwardedFor: "203.0.113.7, 10.0.0.1", RealIP: "10.0.0.2"}, expected: "203.0.113.7"},
		{name: "single forwarded", md: Metadata{ForwardedFor: " 203.0.113.8 "}, expected: "203.0.113.8"},
		{name: "real ip fallback", md: Metadata{RealIP: "198.51.100.4"}, expected: "198.51.100.4"},
		{name: "empty first hop falls back", md: Metadata{ForwardedFor: " , 10.0.0.1", RealIP: "198.51.100.5"}, expected: "198.51.100.5"},
		{name: "nothing", md: Metadata{}, expected: UnknownAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClientAddress(tt.md))
		})
	}
}

func TestFingerprint(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]{16}$`)

	fp := Fingerprint("203.0.113.7")
	assert.Regexp(t, hexRe, fp)
	assert.Equal(t, "fec52565aa0cf18f", fp)
	assert.Equal(t, fp, Fingerprint("203.0.113.7"))
	assert.NotEqual(t, fp, Fingerprint("203.0.113.8"))

	assert.Equal(t, "b23a6a8439c0dde5", Fingerprint(UnknownAddress))
}
