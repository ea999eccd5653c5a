package qrcode

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"qrforge/internal/app/server/api/http/middleware/owner"
	"qrforge/internal/domain/content"
	"qrforge/internal/domain/qrcode"
	"qrforge/internal/domain/render"
	"qrforge/internal/domain/tier"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, params qrcode.CreateParams) (*qrcode.Record, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qrcode.Record), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, ownerID, id uuid.UUID) (*qrcode.Record, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qrcode.Record), args.Error(1)
}

func (m *MockService) List(ctx context.Context, ownerID uuid.UUID, filter qrcode.ListFilter) ([]qrcode.Record, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]qrcode.Record), args.Error(1)
}

func (m *MockService) UpdateDestination(ctx context.Context, ownerID, id uuid.UUID, destination string) (*qrcode.Record, error) {
	args := m.Called(ctx, ownerID, id, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qrcode.Record), args.Error(1)
}

func (m *MockService) AssignFolder(ctx context.Context, ownerID, id uuid.UUID, folderID *uuid.UUID) (*qrcode.Record, error) {
	args := m.Called(ctx, ownerID, id, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qrcode.Record), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockService) Image(ctx context.Context, ownerID, id uuid.UUID, format render.Format) (render.Image, error) {
	args := m.Called(ctx, ownerID, id, format)
	return args.Get(0).(render.Image), args.Error(1)
}

func (m *MockService) Payload(rec *qrcode.Record) string {
	args := m.Called(rec)
	return args.String(0)
}

func (m *MockService) ShortURL(code string) string {
	args := m.Called(code)
	return args.String(0)
}

type fixture struct {
	api     humatest.TestAPI
	svc     *MockService
	ownerID uuid.UUID
	auth    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	_, api := humatest.New(t)
	svc := new(MockService)
	log := slog.Default()
	NewHandler(svc, log, huma.Middlewares{owner.New(api, log).Middleware()}).SetupRoutes(api)

	ownerID := uuid.New()
	return &fixture{
		api:     api,
		svc:     svc,
		ownerID: ownerID,
		auth:    owner.Header + ": " + ownerID.String(),
	}
}

func strPtr(s string) *string { return &s }

func dynamicRecord(ownerID uuid.UUID) *qrcode.Record {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &qrcode.Record{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           "Menu",
		Kind:           qrcode.KindDynamic,
		ShortCode:      strPtr("Ab12Cd34"),
		DestinationURL: strPtr("https://example.com"),
		Content:        content.URL{URL: "https://example.com"},
		Style:          render.DefaultStyle(),
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestHandler_Create(t *testing.T) {
	t.Run("dynamic", func(t *testing.T) {
		f := newFixture(t)
		rec := dynamicRecord(f.ownerID)
		f.svc.On("Create", mock.Anything, mock.MatchedBy(func(p qrcode.CreateParams) bool {
			return p.OwnerID == f.ownerID &&
				p.Kind == qrcode.KindDynamic &&
				p.Name == "Menu" &&
				p.Content == content.URL{URL: "https://example.com"} &&
				p.Style == nil &&
				p.FolderID == nil
		})).Return(rec, nil)
		f.svc.On("Payload", rec).Return("https://qr.example/r/Ab12Cd34")
		f.svc.On("ShortURL", "Ab12Cd34").Return("https://qr.example/r/Ab12Cd34")

		resp := f.api.Post("/api/v1/qr-codes", f.auth, map[string]any{
			"name":    "Menu",
			"type":    "dynamic",
			"content": map[string]any{"type": "url", "url": "https://example.com"},
		})

		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
		body := decode[response](t, resp.Body.Bytes())
		assert.Equal(t, rec.ID, body.ID)
		assert.Equal(t, "https://qr.example/r/Ab12Cd34", body.ShortURL)
		assert.Equal(t, "https://qr.example/r/Ab12Cd34", body.Payload)
		require.NotNil(t, body.Content)
		assert.Equal(t, content.URL{URL: "https://example.com"}, body.Content.Descriptor)
		f.svc.AssertExpectations(t)
	})

	t.Run("missing owner", func(t *testing.T) {
		f := newFixture(t)

		resp := f.api.Post("/api/v1/qr-codes", map[string]any{"name": "Menu", "type": "static"})

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		f.svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("tier limit", func(t *testing.T) {
		f := newFixture(t)
		f.svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, tier.Check(tier.Free, tier.DynamicCodes, 0))

		resp := f.api.Post("/api/v1/qr-codes", f.auth, map[string]any{
			"name":           "Menu",
			"type":           "dynamic",
			"destinationUrl": "https://example.com",
		})

		assert.Equal(t, http.StatusForbidden, resp.Code)
		assert.Contains(t, resp.Body.String(), "dynamic QR codes are not available on the free plan")
	})

	t.Run("malformed folder id", func(t *testing.T) {
		f := newFixture(t)

		resp := f.api.Post("/api/v1/qr-codes", f.auth, map[string]any{
			"name":     "Menu",
			"type":     "static",
			"content":  map[string]any{"type": "text", "text": "hi"},
			"folderId": "folder-1",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		f.svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHandler_List(t *testing.T) {
	f := newFixture(t)
	folderID := uuid.New()
	rec := dynamicRecord(f.ownerID)
	rec.FolderID = &folderID
	f.svc.On("List", mock.Anything, f.ownerID, qrcode.ListFilter{FolderID: &folderID}).
		Return([]qrcode.Record{*rec}, nil)
	f.svc.On("Payload", mock.Anything).Return("https://qr.example/r/Ab12Cd34")
	f.svc.On("ShortURL", "Ab12Cd34").Return("https://qr.example/r/Ab12Cd34")

	resp := f.api.Get("/api/v1/qr-codes?folderId="+folderID.String(), f.auth)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	body := decode[[]response](t, resp.Body.Bytes())
	require.Len(t, body, 1)
	assert.Equal(t, &folderID, body[0].FolderID)
}

func TestHandler_Errors(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		setup      func(f *fixture)
		do         func(f *fixture) int
		wantStatus int
	}{
		{
			name: "get unknown",
			setup: func(f *fixture) {
				f.svc.On("Get", mock.Anything, f.ownerID, id).Return(nil, qrcode.ErrNotFound)
			},
			do: func(f *fixture) int {
				return f.api.Get("/api/v1/qr-codes/"+id.String(), f.auth).Code
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "get malformed id",
			setup: func(*fixture) {},
			do: func(f *fixture) int {
				return f.api.Get("/api/v1/qr-codes/42", f.auth).Code
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "destination of static code",
			setup: func(f *fixture) {
				f.svc.On("UpdateDestination", mock.Anything, f.ownerID, id, "https://example2.com").
					Return(nil, qrcode.ErrNotDynamic)
			},
			do: func(f *fixture) int {
				return f.api.Patch("/api/v1/qr-codes/"+id.String()+"/destination", f.auth,
					map[string]any{"destinationUrl": "https://example2.com"}).Code
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "folder locked on free",
			setup: func(f *fixture) {
				f.svc.On("AssignFolder", mock.Anything, f.ownerID, id, mock.Anything).
					Return(nil, tier.Require(tier.Free, tier.Folders))
			},
			do: func(f *fixture) int {
				return f.api.Patch("/api/v1/qr-codes/"+id.String()+"/folder", f.auth,
					map[string]any{"folderId": uuid.New().String()}).Code
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "delete",
			setup: func(f *fixture) {
				f.svc.On("Delete", mock.Anything, f.ownerID, id).Return(nil)
			},
			do: func(f *fixture) int {
				return f.api.Delete("/api/v1/qr-codes/"+id.String(), f.auth).Code
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			assert.Equal(t, tt.wantStatus, tt.do(f))
			f.svc.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdateDestination(t *testing.T) {
	f := newFixture(t)
	rec := dynamicRecord(f.ownerID)
	rec.DestinationURL = strPtr("https://example2.com")
	f.svc.On("UpdateDestination", mock.Anything, f.ownerID, rec.ID, "https://example2.com").Return(rec, nil)
	f.svc.On("Payload", rec).Return("https://qr.example/r/Ab12Cd34")
	f.svc.On("ShortURL", "Ab12Cd34").Return("https://qr.example/r/Ab12Cd34")

	resp := f.api.Patch("/api/v1/qr-codes/"+rec.ID.String()+"/destination", f.auth,
		map[string]any{"destinationUrl": "https://example2.com"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	body := decode[response](t, resp.Body.Bytes())
	require.NotNil(t, body.DestinationURL)
	assert.Equal(t, "https://example2.com", *body.DestinationURL)
	// The printed payload is unchanged.
	assert.Equal(t, "https://qr.example/r/Ab12Cd34", body.Payload)
}

func TestHandler_AssignFolder_Remove(t *testing.T) {
	f := newFixture(t)
	rec := dynamicRecord(f.ownerID)
	f.svc.On("AssignFolder", mock.Anything, f.ownerID, rec.ID, (*uuid.UUID)(nil)).Return(rec, nil)
	f.svc.On("Payload", rec).Return("https://qr.example/r/Ab12Cd34")
	f.svc.On("ShortURL", "Ab12Cd34").Return("https://qr.example/r/Ab12Cd34")

	resp := f.api.Patch("/api/v1/qr-codes/"+rec.ID.String()+"/folder", f.auth, map[string]any{})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	f.svc.AssertExpectations(t)
}

func TestHandler_Image(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFormat render.Format
		img        render.Image
	}{
		{
			name:       "png by default",
			wantFormat: render.FormatPNG,
			img:        render.Image{ContentType: "image/png", Data: []byte("\x89PNG")},
		},
		{
			name:       "svg",
			query:      "?format=svg",
			wantFormat: render.FormatSVG,
			img:        render.Image{ContentType: "image/svg+xml", Data: []byte("<svg/>")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()
			f.svc.On("Image", mock.Anything, f.ownerID, id, tt.wantFormat).Return(tt.img, nil)

			resp := f.api.Get("/api/v1/qr-codes/"+id.String()+"/image"+tt.query, f.auth)

			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
			assert.Equal(t, tt.img.ContentType, resp.Header().Get("Content-Type"))
			assert.Equal(t, tt.img.Data, resp.Body.Bytes())
		})
	}
}
