// Package httphandler contains the echo handlers of the REST API.
package httphandler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lllypuk/talentnet/internal/application/appcore"
	"github.com/lllypuk/talentnet/internal/domain/mentorship"
	"github.com/lllypuk/talentnet/internal/domain/skill"
	"github.com/lllypuk/talentnet/internal/domain/user"
	"github.com/lllypuk/talentnet/internal/domain/uuid"
)

// pathUserID parses a user id path parameter.
func pathUserID(c echo.Context, name string) (user.ID, error) {
	id, err := user.ParseID(c.Param(name))
	if err != nil {
		return 0, appcore.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

func pathSkillID(c echo.Context, name string) (skill.ID, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || !skill.ID(id).IsValid() {
		return 0, appcore.NewValidationError(name, "must be a positive integer")
	}
	return skill.ID(id), nil
}

func pathRequestID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.ParseUUID(c.Param(name))
	if err != nil {
		return "", appcore.NewValidationError(name, "must be a uuid")
	}
	return id, nil
}

// optionalQuery returns nil when the parameter is absent. A present but empty
// parameter is a constraint on the empty string.
func optionalQuery(c echo.Context, name string) *string {
	values := c.QueryParams()
	if !values.Has(name) {
		return nil
	}
	v := values.Get(name)
	return &v
}

func optionalUserQuery(c echo.Context, name string) (*user.ID, error) {
	raw := optionalQuery(c, name)
	if raw == nil {
		return nil, nil
	}
	id, err := user.ParseID(*raw)
	if err != nil {
		return nil, appcore.NewValidationError(name, "must be a positive integer")
	}
	return &id, nil
}

func optionalStatusQuery(c echo.Context, name string) (*mentorship.Status, error) {
	raw := optionalQuery(c, name)
	if raw == nil {
		return nil, nil
	}
	status, err := mentorship.ParseStatus(*raw)
	if err != nil {
		return nil, appcore.NewValidationError(name, "must be one of PENDING ACCEPTED REJECTED")
	}
	return &status, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
