package services

import (
	"context"

	"github.com/Nigam11/skillhub-front/internal/client/client"
	"github.com/Nigam11/skillhub-front/internal/client/models"
)

// fakeClient implements client.Client for service unit tests. Every call is
// recorded by name in Calls.
type fakeClient struct {
	Calls []string

	CloseErr error

	LoginRet      *models.LoginResponse
	LoginErr      error
	LastEmail     string
	LastPassword  string
	SignupErr     error
	LastSignup    models.SignupRequest
	ResetReqErr   error
	ResetConfErr  error
	LastResetTok  string
	LastResetPass string

	MeRet        *models.Profile
	MeErr        error
	UpdateMeErr  error
	LastUpdate   models.ProfileUpdate
	LastImage    *models.Image
	DeletePicErr error
	PublicRet    *models.Profile
	PublicErr    error
	LastPublicID int64

	SearchRet    []models.Resource
	SearchErr    error
	LastTitle    string
	PlatformRet  []models.Resource
	PlatformErr  error
	LastPlatform string
	GetRet       *models.Resource
	GetErr       error
	CreateErr    error
	LastResource models.Resource
	UpdateResErr error
	DeleteResErr error
	SavedRet     []models.Resource
	SavedErr     error
	UnsaveErr    error
	LastID       int64
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) call(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Close() error { f.call("Close"); return f.CloseErr }

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.LoginResponse, error) {
	f.call("Login")
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, req models.SignupRequest) error {
	f.call("Signup")
	f.LastSignup = req
	return f.SignupErr
}

func (f *fakeClient) RequestPasswordReset(_ context.Context, email string) error {
	f.call("RequestPasswordReset")
	f.LastEmail = email
	return f.ResetReqErr
}

func (f *fakeClient) ConfirmPasswordReset(_ context.Context, token, newPassword string) error {
	f.call("ConfirmPasswordReset")
	f.LastResetTok, f.LastResetPass = token, newPassword
	return f.ResetConfErr
}

func (f *fakeClient) Me(context.Context) (*models.Profile, error) {
	f.call("Me")
	return f.MeRet, f.MeErr
}

func (f *fakeClient) UpdateMe(_ context.Context, u models.ProfileUpdate, img *models.Image) error {
	f.call("UpdateMe")
	f.LastUpdate, f.LastImage = u, img
	return f.UpdateMeErr
}

func (f *fakeClient) DeleteProfilePicture(context.Context) error {
	f.call("DeleteProfilePicture")
	return f.DeletePicErr
}

func (f *fakeClient) PublicProfile(_ context.Context, id int64) (*models.Profile, error) {
	f.call("PublicProfile")
	f.LastPublicID = id
	return f.PublicRet, f.PublicErr
}

func (f *fakeClient) SearchResources(_ context.Context, title string) ([]models.Resource, error) {
	f.call("SearchResources")
	f.LastTitle = title
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) FilterByPlatform(_ context.Context, platform string) ([]models.Resource, error) {
	f.call("FilterByPlatform")
	f.LastPlatform = platform
	return f.PlatformRet, f.PlatformErr
}

func (f *fakeClient) GetResource(_ context.Context, id int64) (*models.Resource, error) {
	f.call("GetResource")
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateResource(_ context.Context, r models.Resource, img *models.Image) error {
	f.call("CreateResource")
	f.LastResource, f.LastImage = r, img
	return f.CreateErr
}

func (f *fakeClient) UpdateResource(_ context.Context, id int64, r models.Resource) error {
	f.call("UpdateResource")
	f.LastID, f.LastResource = id, r
	return f.UpdateResErr
}

func (f *fakeClient) DeleteResource(_ context.Context, id int64) error {
	f.call("DeleteResource")
	f.LastID = id
	return f.DeleteResErr
}

func (f *fakeClient) SavedResources(context.Context) ([]models.Resource, error) {
	f.call("SavedResources")
	return f.SavedRet, f.SavedErr
}

func (f *fakeClient) UnsaveResource(_ context.Context, id int64) error {
	f.call("UnsaveResource")
	f.LastID = id
	return f.UnsaveErr
}
