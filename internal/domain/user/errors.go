package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrLoginExists            = errors.New("login already in use")
	ErrAdminPrivilegeRequired = errors.New("administrator privilege required")
)
