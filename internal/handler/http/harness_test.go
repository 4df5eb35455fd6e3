package httphandler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	followapp "github.com/lllypuk/talentnet/internal/application/follow"
	mentorshipapp "github.com/lllypuk/talentnet/internal/application/mentorship"
	skillapp "github.com/lllypuk/talentnet/internal/application/skill"
	userapp "github.com/lllypuk/talentnet/internal/application/user"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/user"
	httphandler "github.com/lllypuk/talentnet/internal/handler/http"
	"github.com/lllypuk/talentnet/internal/infrastructure/httpserver"
	"github.com/lllypuk/talentnet/internal/infrastructure/repository/memory"
	"github.com/lllypuk/talentnet/internal/service"
)

const minOffers = 2

// testAPI - полный HTTP стек поверх in-memory репозиториев
type testAPI struct {
	router *httpserver.Router
}

func newTestAPI(t *testing.T, profiles ...user.Profile) *testAPI {
	t.Helper()

	users := memory.NewUserRepository(profiles...)
	follows := memory.NewFollowRepository(users)
	requests := memory.NewMentorshipRepository()
	skills := memory.NewSkillRepository()
	offers := memory.NewOfferRepository()
	tx := appcore.NoopTxManager{}

	profileService := service.NewProfileService(service.ProfileServiceConfig{
		RegisterUC:   userapp.NewRegisterProfileUseCase(users),
		GetUC:        userapp.NewGetProfileUseCase(users),
		DeactivateUC: userapp.NewDeactivateProfileUseCase(users),
	})
	followService := service.NewFollowService(service.FollowServiceConfig{
		FollowUC:         followapp.NewFollowUserUseCase(follows, users, tx),
		UnfollowUC:       followapp.NewUnfollowUserUseCase(follows, tx),
		ListFollowersUC:  followapp.NewListFollowersUseCase(follows),
		ListFollowingUC:  followapp.NewListFollowingUseCase(follows),
		CountFollowersUC: followapp.NewCountFollowersUseCase(follows),
		CountFollowingUC: followapp.NewCountFollowingUseCase(follows),
	})
	mentorshipService := service.NewMentorshipService(service.MentorshipServiceConfig{
		RequestUC: mentorshipapp.NewRequestMentorshipUseCase(
			requests, users, tx, mentorship.NewCooldownPolicy(mentorship.DefaultCooldownMonths),
		),
		AcceptUC:      mentorshipapp.NewAcceptRequestUseCase(requests, tx),
		RejectUC:      mentorshipapp.NewRejectRequestUseCase(requests, tx),
		GetRequestsUC: mentorshipapp.NewGetRequestsUseCase(requests),
		GetRequestUC:  mentorshipapp.NewGetRequestUseCase(requests),
	})
	skillService := service.NewSkillService(service.SkillServiceConfig{
		CreateUC:     skillapp.NewCreateSkillUseCase(skills),
		OfferUC:      skillapp.NewOfferSkillUseCase(skills, offers, users),
		AcquireUC:    skillapp.NewAcquireSkillFromOffersUseCase(skills, offers, tx, minOffers),
		UserSkillsUC: skillapp.NewGetUserSkillsUseCase(skills),
		OfferedUC:    skillapp.NewGetOfferedSkillsUseCase(skills, offers),
	})

	e := echo.New()
	e.HTTPErrorHandler = httpserver.ErrorHandler
	e.Validator = httpserver.NewRequestValidator()

	router := httpserver.NewRouter(e, httpserver.DefaultRouterConfig())
	router.RegisterAll(
		httphandler.NewProfileHandler(profileService),
		httphandler.NewFollowHandler(followService),
		httphandler.NewMentorshipHandler(mentorshipService),
		httphandler.NewSkillHandler(skillService),
	)

	return &testAPI{router: router}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.router.Echo().ServeHTTP(rec, req)
	return rec
}

// envelope декодирует стандартный ответ, Data остается сырым
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   *httpserver.Error `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success, "unexpected error response: %s", rec.Body.String())

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *httpserver.Error {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	return env.Error
}

func profile(t *testing.T, id user.ID, username, city string) user.Profile {
	t.Helper()

	p, err := user.NewProfile(id, username, username+"@example.com", city, "")
	require.NoError(t, err)
	return p
}
