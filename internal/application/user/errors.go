package user

import "errors"

var (
	// ErrUserNotFound возникает когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists возникает при регистрации профиля с занятым id
	ErrUserAlreadyExists = errors.New("user already exists")
)
