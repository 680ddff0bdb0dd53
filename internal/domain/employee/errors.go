package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCPFExists        = errors.New("CPF already registered")
)
