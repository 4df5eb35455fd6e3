package user

import "github.com/lllypuk/talentnet/internal/domain/user"

// Query базовый interface запросов
type Query interface {
	QueryName() string
}

// GetProfileQuery - получение профиля по ID
type GetProfileQuery struct {
	UserID user.ID
}

func (q GetProfileQuery) QueryName() string { return "GetProfile" }
