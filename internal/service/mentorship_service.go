package service

import (
	"context"

	mentorshipapp "github.com/lllypuk/talentnet/internal/application/mentorship"
	httphandler "github.com/lllypuk/talentnet/internal/handler/http"
)

// Compile-time assertion that MentorshipService implements httphandler.MentorshipService.
var _ httphandler.MentorshipService = (*MentorshipService)(nil)

// RequestMentorshipUseCase defines interface for use case creating a request.
type RequestMentorshipUseCase interface {
	Execute(ctx context.Context, cmd mentorshipapp.RequestMentorshipCommand) (mentorshipapp.Result, error)
}

// AcceptRequestUseCase defines interface for use case accepting a request.
type AcceptRequestUseCase interface {
	Execute(ctx context.Context, cmd mentorshipapp.AcceptRequestCommand) (mentorshipapp.Result, error)
}

// RejectRequestUseCase defines interface for use case rejecting a request.
type RejectRequestUseCase interface {
	Execute(ctx context.Context, cmd mentorshipapp.RejectRequestCommand) (mentorshipapp.Result, error)
}

// GetRequestsUseCase defines interface for use case filtering requests.
type GetRequestsUseCase interface {
	Execute(ctx context.Context, query mentorshipapp.GetRequestsQuery) (mentorshipapp.ListResult, error)
}

// GetRequestUseCase defines interface for use case loading one request.
type GetRequestUseCase interface {
	Execute(ctx context.Context, query mentorshipapp.GetRequestQuery) (mentorshipapp.Result, error)
}

// MentorshipService реализует httphandler.MentorshipService.
type MentorshipService struct {
	requestUC     RequestMentorshipUseCase
	acceptUC      AcceptRequestUseCase
	rejectUC      RejectRequestUseCase
	getRequestsUC GetRequestsUseCase
	getRequestUC  GetRequestUseCase
}

// MentorshipServiceConfig contains зависимости for MentorshipService.
type MentorshipServiceConfig struct {
	RequestUC     RequestMentorshipUseCase
	AcceptUC      AcceptRequestUseCase
	RejectUC      RejectRequestUseCase
	GetRequestsUC GetRequestsUseCase
	GetRequestUC  GetRequestUseCase
}

// NewMentorshipService создаёт New MentorshipService.
func NewMentorshipService(cfg MentorshipServiceConfig) *MentorshipService {
	return &MentorshipService{
		requestUC:     cfg.RequestUC,
		acceptUC:      cfg.AcceptUC,
		rejectUC:      cfg.RejectUC,
		getRequestsUC: cfg.GetRequestsUC,
		getRequestUC:  cfg.GetRequestUC,
	}
}

// RequestMentorship создаёт запрос менторства.
func (s *MentorshipService) RequestMentorship(
	ctx context.Context,
	cmd mentorshipapp.RequestMentorshipCommand,
) (mentorshipapp.Result, error) {
	return s.requestUC.Execute(ctx, cmd)
}

// AcceptRequest принимает запрос.
func (s *MentorshipService) AcceptRequest(
	ctx context.Context,
	cmd mentorshipapp.AcceptRequestCommand,
) (mentorshipapp.Result, error) {
	return s.acceptUC.Execute(ctx, cmd)
}

// RejectRequest отклоняет запрос.
func (s *MentorshipService) RejectRequest(
	ctx context.Context,
	cmd mentorshipapp.RejectRequestCommand,
) (mentorshipapp.Result, error) {
	return s.rejectUC.Execute(ctx, cmd)
}

// GetRequests returns запросы по фильтру.
func (s *MentorshipService) GetRequests(
	ctx context.Context,
	query mentorshipapp.GetRequestsQuery,
) (mentorshipapp.ListResult, error) {
	return s.getRequestsUC.Execute(ctx, query)
}

// GetRequest returns запрос по ID.
func (s *MentorshipService) GetRequest(
	ctx context.Context,
	query mentorshipapp.GetRequestQuery,
) (mentorshipapp.Result, error) {
	return s.getRequestUC.Execute(ctx, query)
}
