package user

import "github.com/lllypuk/talentnet/internal/domain/user"

// Command базовый interface commands
type Command interface {
	CommandName() string
}

// RegisterProfileCommand - регистрация профиля, id выдает внешний сервис пользователей
type RegisterProfileCommand struct {
	UserID   user.ID
	Username string
	Email    string
	City     string
	Phone    string
}

func (c RegisterProfileCommand) CommandName() string { return "RegisterProfile" }

// DeactivateProfileCommand - деактивация профиля
type DeactivateProfileCommand struct {
	UserID user.ID
}

func (c DeactivateProfileCommand) CommandName() string { return "DeactivateProfile" }
