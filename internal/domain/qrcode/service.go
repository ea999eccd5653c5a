package qrcode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/content"
	"qrforge/internal/domain/folder"
	"qrforge/internal/domain/profile"
	"qrforge/internal/domain/render"
	"qrforge/internal/domain/tier"
)

type Servicer interface {
	Create(ctx context.Context, params CreateParams) (*Record, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*Record, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]Record, error)
	UpdateDestination(ctx context.Context, ownerID, id uuid.UUID, destination string) (*Record, error)
	AssignFolder(ctx context.Context, ownerID, id uuid.UUID, folderID *uuid.UUID) (*Record, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Image(ctx context.Context, ownerID, id uuid.UUID, format render.Format) (render.Image, error)
	Payload(rec *Record) string
	ShortURL(code string) string
}

// Folders is the part of the folder store the service needs to check ownership.
type Folders interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (*folder.Folder, error)
}

type Service struct {
	repo     Repository
	folders  Folders
	profiles profile.Repository
	renderer *render.Renderer
	baseURL  string
	log      *slog.Logger

	newCode func() (string, error)
	now     func() time.Time
}

func NewService(
	repo Repository,
	folders Folders,
	profiles profile.Repository,
	renderer *render.Renderer,
	baseURL string,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		folders:  folders,
		profiles: profiles,
		renderer: renderer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log.With("component", "qrcode_service"),
		newCode:  NewShortCode,
		now:      time.Now,
	}
}

// Create validates the request, applies the tier gate for dynamic codes and
// folder placement, then stores the code. Short code collisions are detected
// by the store and retried with a fresh code.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Record, error) {
	if !p.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	name, err := normalizeName(p.Name)
	if err != nil {
		return nil, err
	}
	if p.Content != nil || p.Kind == KindStatic {
		if err := content.Validate(p.Content); err != nil {
			return nil, err
		}
	}

	style := render.DefaultStyle()
	if p.Style != nil {
		style = *p.Style
	}
	if err := s.renderer.ValidateStyle(style); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:       uuid.New(),
		OwnerID:  p.OwnerID,
		Name:     name,
		Kind:     p.Kind,
		Content:  p.Content,
		Style:    style,
		FolderID: p.FolderID,
	}

	if p.Kind == KindDynamic {
		if p.DestinationURL != "" {
			if err := content.ValidateURL(p.DestinationURL); err != nil {
				return nil, err
			}
			dest := p.DestinationURL
			rec.DestinationURL = &dest
		} else if u, ok := p.Content.(content.URL); !ok || u.URL == "" {
			return nil, ErrMissingDestination
		}
	}

	if p.Kind == KindDynamic || p.FolderID != nil {
		t, err := s.profiles.Tier(ctx, p.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("resolve tier: %w", err)
		}
		if p.Kind == KindDynamic {
			if err := s.checkDynamicQuota(ctx, p.OwnerID, t); err != nil {
				return nil, err
			}
		}
		if p.FolderID != nil {
			if err := s.checkFolder(ctx, p.OwnerID, *p.FolderID, t); err != nil {
				return nil, err
			}
		}
	}

	now := s.now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now

	if p.Kind == KindStatic {
		if err := s.repo.Create(ctx, rec); err != nil {
			s.log.Error("failed to create qr code", "owner_id", p.OwnerID, "error", err)
			return nil, fmt.Errorf("create qr code: %w", err)
		}
		s.log.Info("qr code created", "qr_code_id", rec.ID, "kind", rec.Kind)
		return rec, nil
	}

	for attempt := 1; attempt <= shortCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("generate short code: %w", err)
		}
		rec.ShortCode = &code

		err = s.repo.Create(ctx, rec)
		if err == nil {
			s.log.Info("qr code created", "qr_code_id", rec.ID, "kind", rec.Kind, "short_code", code)
			return rec, nil
		}
		if !errors.Is(err, ErrShortCodeTaken) {
			s.log.Error("failed to create qr code", "owner_id", p.OwnerID, "error", err)
			return nil, fmt.Errorf("create qr code: %w", err)
		}
		s.log.Warn("short code collision", "attempt", attempt)
	}
	return nil, ErrShortCodesExhausted
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Record, error) {
	rec, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get qr code", "qr_code_id", id, "error", err)
		return nil, fmt.Errorf("get qr code: %w", err)
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]Record, error) {
	recs, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		s.log.Error("failed to list qr codes", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list qr codes: %w", err)
	}
	return recs, nil
}

// UpdateDestination retargets a dynamic code. The printed symbol does not change.
func (s *Service) UpdateDestination(ctx context.Context, ownerID, id uuid.UUID, destination string) (*Record, error) {
	rec, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !rec.IsDynamic() {
		return nil, ErrNotDynamic
	}
	if err := content.ValidateURL(destination); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDestination(ctx, ownerID, id, destination); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update destination: %w", err)
	}
	s.log.Info("destination updated", "qr_code_id", id)

	rec.DestinationURL = &destination
	rec.UpdatedAt = s.now().UTC()
	return rec, nil
}

// AssignFolder moves a code into a folder, or out of any folder when folderID is nil.
func (s *Service) AssignFolder(ctx context.Context, ownerID, id uuid.UUID, folderID *uuid.UUID) (*Record, error) {
	rec, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if folderID != nil {
		t, err := s.profiles.Tier(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("resolve tier: %w", err)
		}
		if err := s.checkFolder(ctx, ownerID, *folderID, t); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateFolder(ctx, ownerID, id, folderID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update folder: %w", err)
	}

	rec.FolderID = folderID
	rec.UpdatedAt = s.now().UTC()
	return rec, nil
}

// Delete removes the code. Its scan history is kept.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete qr code", "qr_code_id", id, "error", err)
		return fmt.Errorf("delete qr code: %w", err)
	}
	s.log.Info("qr code deleted", "qr_code_id", id, "owner_id", ownerID)
	return nil
}

func (s *Service) Image(ctx context.Context, ownerID, id uuid.UUID, format render.Format) (render.Image, error) {
	rec, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return render.Image{}, err
	}
	return s.renderer.Render(s.Payload(rec), rec.Style, format)
}

// Payload is the string the symbol encodes: the short link for dynamic codes,
// the encoded content for static ones.
func (s *Service) Payload(rec *Record) string {
	if rec.IsDynamic() && rec.ShortCode != nil {
		return s.ShortURL(*rec.ShortCode)
	}
	if rec.Content == nil {
		return ""
	}
	return content.Encode(rec.Content)
}

func (s *Service) ShortURL(code string) string {
	return s.baseURL + "/r/" + code
}

func (s *Service) checkDynamicQuota(ctx context.Context, ownerID uuid.UUID, t tier.Tier) error {
	count, err := s.repo.CountDynamic(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("count dynamic codes: %w", err)
	}
	if err := tier.Check(t, tier.DynamicCodes, count); err != nil {
		s.log.Info("dynamic code creation denied", "owner_id", ownerID, "tier", t, "count", count)
		return err
	}
	return nil
}

func (s *Service) checkFolder(ctx context.Context, ownerID, folderID uuid.UUID, t tier.Tier) error {
	if err := tier.Require(t, tier.Folders); err != nil {
		return err
	}
	if _, err := s.folders.Get(ctx, ownerID, folderID); err != nil {
		if errors.Is(err, folder.ErrNotFound) {
			return ErrFolderNotFound
		}
		return fmt.Errorf("get folder: %w", err)
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", fmt.Errorf("%w: name must be %d characters or less", ErrInvalidName, MaxNameLength)
	}
	return name, nil
}
