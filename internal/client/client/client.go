package client

import (
	"context"

	"github.com/Nigam11/skillhub-front/internal/client/models"
)

type Client interface {
	Close() error

	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error

	Me(ctx context.Context) (*models.Profile, error)
	UpdateMe(ctx context.Context, update models.ProfileUpdate, image *models.Image) error
	DeleteProfilePicture(ctx context.Context) error
	PublicProfile(ctx context.Context, userID int64) (*models.Profile, error)

	SearchResources(ctx context.Context, title string) ([]models.Resource, error)
	FilterByPlatform(ctx context.Context, platform string) ([]models.Resource, error)
	GetResource(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, resource models.Resource, image *models.Image) error
	UpdateResource(ctx context.Context, id int64, resource models.Resource) error
	DeleteResource(ctx context.Context, id int64) error
	SavedResources(ctx context.Context) ([]models.Resource, error)
	UnsaveResource(ctx context.Context, id int64) error
}

// TokenSource yields the bearer credential for the next request. An empty or
// sentinel-invalid value means the request goes out without Authorization.
type TokenSource interface {
	Token() string
}

// UnauthorizedFunc is called when the backend rejects a request that carried
// token.
type UnauthorizedFunc func(ctx context.Context, token string)
