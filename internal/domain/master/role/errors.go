package role

import "errors"

var (
	ErrRoleNotFound = errors.New("role not found")
)
