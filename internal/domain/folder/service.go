package folder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"qrforge/internal/domain/profile"
	"qrforge/internal/domain/tier"
)

type Servicer interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Folder, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*Folder, error)
	Create(ctx context.Context, ownerID uuid.UUID, name, color string) (*Folder, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateParams) (*Folder, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo     Repository
	profiles profile.Repository
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, profiles profile.Repository, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		validate: validator.New(),
		log:      log.With("component", "folder_service"),
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]Folder, error) {
	folders, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list folders", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Folder, error) {
	f, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return f, nil
}

// Create checks the folder quota of the owner's tier before inserting.
// Uniqueness of the name is left to the store.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, name, color string) (*Folder, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if color == "" {
		color = DefaultColor
	}
	if err := s.checkColor(color); err != nil {
		return nil, err
	}

	t, err := s.profiles.Tier(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("resolve tier: %w", err)
	}
	count, err := s.repo.Count(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count folders: %w", err)
	}
	if err := tier.Check(t, tier.Folders, count); err != nil {
		s.log.Info("folder creation denied", "owner_id", ownerID, "tier", t, "count", count)
		return nil, err
	}

	now := s.now().UTC()
	f := &Folder{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		s.log.Error("failed to create folder", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.log.Info("folder created", "folder_id", f.ID, "owner_id", ownerID)
	return f, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateParams) (*Folder, error) {
	if params.Name == nil && params.Color == nil {
		return nil, ErrNoUpdates
	}

	f, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name, err := normalizeName(*params.Name)
		if err != nil {
			return nil, err
		}
		f.Name = name
	}
	if params.Color != nil {
		if err := s.checkColor(*params.Color); err != nil {
			return nil, err
		}
		f.Color = *params.Color
	}
	f.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, f); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateName):
			return nil, ErrDuplicateName
		case errors.Is(err, ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update folder: %w", err)
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete folder", "folder_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete folder: %w", err)
	}
	s.log.Info("folder deleted", "folder_id", id, "owner_id", ownerID)
	return nil
}

func (s *Service) checkColor(color string) error {
	if err := s.validate.Var(color, "hexcolor"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
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
