package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrforge/internal/domain/content"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "phone",
			args: []string{"encode", "--type", "phone", "--phone", "+15551234567"},
			want: "tel:+15551234567\n",
		},
		{
			name: "sms",
			args: []string{"encode", "-t", "sms", "--phone", "+15551234567", "--message", "hi there"},
			want: "sms:+15551234567?body=hi%20there\n",
		},
		{
			name:    "invalid email",
			args:    []string{"encode", "--type", "email", "--email", "nobody"},
			wantErr: content.ErrInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEncode_WritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifi.svg")

	out, err := run(t, "encode", "--type", "wifi", "--ssid", "cafe", "--password", "secret", "--out", path, "--fg", "#112233")
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:cafe;P:secret;H:false;;\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg "))
	assert.Contains(t, string(data), "#112233")
}

func TestFormatLimit(t *testing.T) {
	assert.Equal(t, "unlimited", formatLimit(-1))
	assert.Equal(t, "5", formatLimit(5))
}
