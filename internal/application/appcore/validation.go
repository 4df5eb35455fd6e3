package appcore

import (
	"strings"

	"github.com/lllypuk/talentnet/internal/domain/user"
)

// ValidateRequired проверяет, что строка не пустая и не состоит из пробелов
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}

// ValidateUserID проверяет, что идентификатор пользователя положительный
func ValidateUserID(field string, id user.ID) error {
	if !id.IsValid() {
		return NewValidationError(field, "must be a positive user id")
	}
	return nil
}

// ValidatePositive проверяет, что число положительное
func ValidatePositive(field string, value int64) error {
	if value <= 0 {
		return NewValidationError(field, "must be positive")
	}
	return nil
}
