package model

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailRequired = errors.New("email is required for new users")
)
