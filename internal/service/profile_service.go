package service

import (
	"context"

	userapp "github.com/lllypuk/talentnet/internal/application/user"
	httphandler "github.com/lllypuk/talentnet/internal/handler/http"
)

// Compile-time assertion that ProfileService implements httphandler.ProfileService.
var _ httphandler.ProfileService = (*ProfileService)(nil)

// RegisterProfileUseCase defines interface for use case registering a profile.
type RegisterProfileUseCase interface {
	Execute(ctx context.Context, cmd userapp.RegisterProfileCommand) (userapp.Result, error)
}

// GetProfileUseCase defines interface for use case loading a profile.
type GetProfileUseCase interface {
	Execute(ctx context.Context, query userapp.GetProfileQuery) (userapp.Result, error)
}

// DeactivateProfileUseCase defines interface for use case deactivating a profile.
type DeactivateProfileUseCase interface {
	Execute(ctx context.Context, cmd userapp.DeactivateProfileCommand) (userapp.Result, error)
}

// ProfileService реализует httphandler.ProfileService.
type ProfileService struct {
	registerUC   RegisterProfileUseCase
	getUC        GetProfileUseCase
	deactivateUC DeactivateProfileUseCase
}

// ProfileServiceConfig contains зависимости for ProfileService.
type ProfileServiceConfig struct {
	RegisterUC   RegisterProfileUseCase
	GetUC        GetProfileUseCase
	DeactivateUC DeactivateProfileUseCase
}

// NewProfileService создаёт New ProfileService.
func NewProfileService(cfg ProfileServiceConfig) *ProfileService {
	return &ProfileService{
		registerUC:   cfg.RegisterUC,
		getUC:        cfg.GetUC,
		deactivateUC: cfg.DeactivateUC,
	}
}

// RegisterProfile регистрирует профиль.
func (s *ProfileService) RegisterProfile(
	ctx context.Context,
	cmd userapp.RegisterProfileCommand,
) (userapp.Result, error) {
	return s.registerUC.Execute(ctx, cmd)
}

// GetProfile returns профиль по ID.
func (s *ProfileService) GetProfile(ctx context.Context, query userapp.GetProfileQuery) (userapp.Result, error) {
	return s.getUC.Execute(ctx, query)
}

// DeactivateProfile деактивирует профиль.
func (s *ProfileService) DeactivateProfile(
	ctx context.Context,
	cmd userapp.DeactivateProfileCommand,
) (userapp.Result, error) {
	return s.deactivateUC.Execute(ctx, cmd)
}
