package user

import "github.com/rh-war/hr-console-backend-go/internal/pkg/validator"

// UserResponse is the serialized console account. The password hash never
// leaves the server.
type UserResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      Role   `json:"role"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Login:     u.Login,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}

type CreateUserRequest struct {
	Name      string `json:"name"`
	Login     string `json:"login"`
	Password  string `json:"password"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      Role   `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login is required",
		})
	} else if !validator.IsValidLogin(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if len(r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must have at least 4 characters",
		})
	}

	if r.AvatarURL != "" && !validator.IsValidDataURL(r.AvatarURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "avatar_url",
			Message: "avatar_url must be a data URL",
		})
	}

	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of Administrator, Manager, Coordinator, User",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID        int     `json:"-"` // From URL
	Name      *string `json:"name,omitempty"`
	Login     *string `json:"login,omitempty"`
	Password  *string `json:"password,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Login != nil && !validator.IsValidLogin(*r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if r.Password != nil && len(*r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must have at least 4 characters",
		})
	}

	if r.AvatarURL != nil && *r.AvatarURL != "" && !validator.IsValidDataURL(*r.AvatarURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "avatar_url",
			Message: "avatar_url must be a data URL",
		})
	}

	if r.Role != nil && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of Administrator, Manager, Coordinator, User",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
