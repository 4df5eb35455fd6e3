package uuid

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lllypuk/talentnet/internal/domain/errs"
)

// UUID идентификатор сущностей, хранится в канонической строковой форме
type UUID string

// NewUUID создает новый случайный UUID (v4)
func NewUUID() UUID {
	return UUID(uuid.New().String())
}

// ParseUUID парсит строку и приводит ее к канонической форме.
// Ошибка оборачивает errs.ErrInvalidInput.
func ParseUUID(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid uuid", errs.ErrInvalidInput, s)
	}
	return UUID(parsed.String()), nil
}

// String возвращает строковое представление
func (u UUID) String() string {
	return string(u)
}

// IsZero проверяет, является ли UUID нулевым
func (u UUID) IsZero() bool {
	return u == ""
}
