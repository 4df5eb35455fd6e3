package service

import (
	"context"

	followapp "github.com/lllypuk/talentnet/internal/application/follow"
	httphandler "github.com/lllypuk/talentnet/internal/handler/http"
)

// Compile-time assertion that FollowService implements httphandler.FollowService.
var _ httphandler.FollowService = (*FollowService)(nil)

// FollowUserUseCase defines interface for use case creating a follow edge.
type FollowUserUseCase interface {
	Execute(ctx context.Context, cmd followapp.FollowUserCommand) (followapp.Result, error)
}

// UnfollowUserUseCase defines interface for use case removing a follow edge.
type UnfollowUserUseCase interface {
	Execute(ctx context.Context, cmd followapp.UnfollowUserCommand) (followapp.Result, error)
}

// ListFollowersUseCase defines interface for use case listing followers.
type ListFollowersUseCase interface {
	Execute(ctx context.Context, query followapp.ListFollowersQuery) (followapp.ProfilesResult, error)
}

// ListFollowingUseCase defines interface for use case listing followees.
type ListFollowingUseCase interface {
	Execute(ctx context.Context, query followapp.ListFollowingQuery) (followapp.ProfilesResult, error)
}

// CountFollowersUseCase defines interface for use case counting followers.
type CountFollowersUseCase interface {
	Execute(ctx context.Context, query followapp.CountFollowersQuery) (followapp.CountResult, error)
}

// CountFollowingUseCase defines interface for use case counting followees.
type CountFollowingUseCase interface {
	Execute(ctx context.Context, query followapp.CountFollowingQuery) (followapp.CountResult, error)
}

// FollowService реализует httphandler.FollowService поверх use cases графа подписок.
type FollowService struct {
	followUC         FollowUserUseCase
	unfollowUC       UnfollowUserUseCase
	listFollowersUC  ListFollowersUseCase
	listFollowingUC  ListFollowingUseCase
	countFollowersUC CountFollowersUseCase
	countFollowingUC CountFollowingUseCase
}

// FollowServiceConfig contains зависимости for FollowService.
type FollowServiceConfig struct {
	FollowUC         FollowUserUseCase
	UnfollowUC       UnfollowUserUseCase
	ListFollowersUC  ListFollowersUseCase
	ListFollowingUC  ListFollowingUseCase
	CountFollowersUC CountFollowersUseCase
	CountFollowingUC CountFollowingUseCase
}

// NewFollowService создаёт New FollowService.
func NewFollowService(cfg FollowServiceConfig) *FollowService {
	return &FollowService{
		followUC:         cfg.FollowUC,
		unfollowUC:       cfg.UnfollowUC,
		listFollowersUC:  cfg.ListFollowersUC,
		listFollowingUC:  cfg.ListFollowingUC,
		countFollowersUC: cfg.CountFollowersUC,
		countFollowingUC: cfg.CountFollowingUC,
	}
}

// Follow подписывает follower на followee.
func (s *FollowService) Follow(ctx context.Context, cmd followapp.FollowUserCommand) (followapp.Result, error) {
	return s.followUC.Execute(ctx, cmd)
}

// Unfollow удаляет подписку.
func (s *FollowService) Unfollow(ctx context.Context, cmd followapp.UnfollowUserCommand) (followapp.Result, error) {
	return s.unfollowUC.Execute(ctx, cmd)
}

// ListFollowers returns отфильтрованных подписчиков.
func (s *FollowService) ListFollowers(
	ctx context.Context,
	query followapp.ListFollowersQuery,
) (followapp.ProfilesResult, error) {
	return s.listFollowersUC.Execute(ctx, query)
}

// ListFollowing returns отфильтрованные подписки.
func (s *FollowService) ListFollowing(
	ctx context.Context,
	query followapp.ListFollowingQuery,
) (followapp.ProfilesResult, error) {
	return s.listFollowingUC.Execute(ctx, query)
}

// CountFollowers returns число подписчиков.
func (s *FollowService) CountFollowers(
	ctx context.Context,
	query followapp.CountFollowersQuery,
) (followapp.CountResult, error) {
	return s.countFollowersUC.Execute(ctx, query)
}

// CountFollowing returns число подписок.
func (s *FollowService) CountFollowing(
	ctx context.Context,
	query followapp.CountFollowingQuery,
) (followapp.CountResult, error) {
	return s.countFollowingUC.Execute(ctx, query)
}
