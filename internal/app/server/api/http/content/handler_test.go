package content

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/render"
)

func newAPI(t *testing.T) humatest.TestAPI {
	_, api := humatest.New(t)
	NewHandler(render.New(), slog.Default(), nil).SetupRoutes(api)
	return api
}

func TestHandler_Encode(t *testing.T) {
	tests := []struct {
		name        string
		content     map[string]any
		wantStatus  int
		wantPayload string
		wantDetail  string
	}{
		{
			name:        "wifi",
			content:     map[string]any{"type": "wifi", "ssid": "My;Net", "password": "p:w", "encryption": "WPA"},
			wantStatus:  http.StatusOK,
			wantPayload: `WIFI:T:WPA;S:My\;Net;P:p\:w;H:false;;`,
		},
		{
			name:        "phone",
			content:     map[string]any{"type": "phone", "phone": "+15551234567"},
			wantStatus:  http.StatusOK,
			wantPayload: "tel:+15551234567",
		},
		{
			name:       "invalid email",
			content:    map[string]any{"type": "email", "email": "nobody"},
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "Invalid email format",
		},
		{
			name:       "unknown type",
			content:    map[string]any{"type": "fax"},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newAPI(t)

			resp := api.Post("/api/v1/content/encode", map[string]any{"content": tt.content})

			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantDetail != "" {
				assert.Contains(t, resp.Body.String(), tt.wantDetail)
			}
			if tt.wantPayload == "" {
				return
			}
			var body encodeResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantPayload, body.Payload)
		})
	}
}

func TestHandler_Render(t *testing.T) {
	url := map[string]any{"type": "url", "url": "https://example.com"}

	tests := []struct {
		name            string
		body            map[string]any
		wantStatus      int
		wantContentType string
		wantPrefix      string
	}{
		{
			name:            "png by default",
			body:            map[string]any{"content": url},
			wantStatus:      http.StatusOK,
			wantContentType: "image/png",
			wantPrefix:      "data:image/png;base64,",
		},
		{
			name: "svg with style",
			body: map[string]any{
				"content": url,
				"format":  "svg",
				"style": map[string]any{
					"foregroundColor":      "#112233",
					"backgroundColor":      "#ffffff",
					"errorCorrectionLevel": "H",
					"margin":               4,
					"width":                512,
				},
			},
			wantStatus:      http.StatusOK,
			wantContentType: "image/svg+xml",
			wantPrefix:      "<svg ",
		},
		{
			name: "bad style",
			body: map[string]any{
				"content": url,
				"style": map[string]any{
					"foregroundColor":      "black",
					"backgroundColor":      "#ffffff",
					"errorCorrectionLevel": "M",
					"margin":               2,
					"width":                256,
				},
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown format",
			body:       map[string]any{"content": url, "format": "gif"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid content",
			body:       map[string]any{"content": map[string]any{"type": "url", "url": "nope"}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "text too large for level M",
			body:       map[string]any{"content": map[string]any{"type": "text", "text": strings.Repeat("é", 2000)}},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newAPI(t)

			resp := api.Post("/api/v1/content/render", tt.body)

			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body renderResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, "https://example.com", body.Payload)
			assert.Equal(t, tt.wantContentType, body.ContentType)
			assert.True(t, strings.HasPrefix(body.Data, tt.wantPrefix), body.Data[:min(len(body.Data), 40)])
		})
	}
}
