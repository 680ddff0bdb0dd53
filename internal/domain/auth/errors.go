package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)
