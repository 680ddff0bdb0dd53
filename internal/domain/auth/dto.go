package auth

import (
	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken      string            `json:"access_token"`
	ExpiresAt        int64             `json:"expires_at"`
	RefreshToken     string            `json:"-"` // Delivered via HttpOnly cookie
	RefreshExpiresAt int64             `json:"-"`
	User             user.UserResponse `json:"user"`
	MenuSections     []string          `json:"menu_sections"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
