package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nigam11/skillhub-front/internal/client/client"
	"github.com/Nigam11/skillhub-front/internal/client/models"
)

// ProfileService reads and edits user profiles.
type ProfileService interface {
	Me(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, update models.ProfileUpdate, image *models.Image) error
	DeleteProfilePicture(ctx context.Context) error
	Public(ctx context.Context, userID int64) (*models.Profile, error)
}

type profileService struct {
	client client.Client
}

func NewProfileService(c client.Client) ProfileService {
	return &profileService{client: c}
}

func (p *profileService) Me(ctx context.Context) (*models.Profile, error) {
	prof, err := p.client.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return prof, nil
}

func (p *profileService) Update(ctx context.Context, update models.ProfileUpdate, image *models.Image) error {
	update.Name = strings.TrimSpace(update.Name)
	if update.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if err := p.client.UpdateMe(ctx, update, image); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (p *profileService) DeleteProfilePicture(ctx context.Context) error {
	if err := p.client.DeleteProfilePicture(ctx); err != nil {
		return fmt.Errorf("delete profile picture: %w", err)
	}
	return nil
}

func (p *profileService) Public(ctx context.Context, userID int64) (*models.Profile, error) {
	prof, err := p.client.PublicProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	return prof, nil
}
