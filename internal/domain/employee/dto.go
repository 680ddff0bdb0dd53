package employee

import (
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	CPF            string `json:"cpf"`
	RG             string `json:"rg,omitempty"`
	BirthDate      string `json:"birth_date"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Role           string `json:"role"`
	Department     string `json:"department"`
	HireDate       string `json:"hire_date"`
	EmploymentType string `json:"employment_type"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	Status         Status `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		CPF:            e.CPF,
		RG:             e.RG,
		BirthDate:      dateutil.FormatDate(e.BirthDate),
		Email:          e.Email,
		Phone:          e.Phone,
		Role:           e.Role,
		Department:     e.Department,
		HireDate:       dateutil.FormatDate(e.HireDate),
		EmploymentType: e.EmploymentType,
		AvatarURL:      e.AvatarURL,
		Status:         e.Status,
	}
}

type CreateEmployeeRequest struct {
	Name           string `json:"name"`
	CPF            string `json:"cpf"`
	RG             string `json:"rg,omitempty"`
	BirthDate      string `json:"birth_date"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Role           string `json:"role"`
	Department     string `json:"department"`
	HireDate       string `json:"hire_date"`
	EmploymentType string `json:"employment_type"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	Status         Status `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf is required",
		})
	} else if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must have 11 digits",
		})
	}

	if _, ok := validator.IsValidDate(r.BirthDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "birth_date",
			Message: "birth_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid number",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if r.AvatarURL != "" && !validator.IsValidDataURL(r.AvatarURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "avatar_url",
			Message: "avatar_url must be a data URL",
		})
	}

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts a validated request into an entity. Validate must have
// succeeded first so the date parses cannot fail.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	birthDate, _ := dateutil.ParseDate(r.BirthDate)
	hireDate, _ := dateutil.ParseDate(r.HireDate)
	return Employee{
		Name:           r.Name,
		CPF:            r.CPF,
		RG:             r.RG,
		BirthDate:      birthDate,
		Email:          r.Email,
		Phone:          r.Phone,
		Role:           r.Role,
		Department:     r.Department,
		HireDate:       hireDate,
		EmploymentType: r.EmploymentType,
		AvatarURL:      r.AvatarURL,
		Status:         r.Status,
	}
}

// UpdateEmployeeRequest overwrites the whole record, mirroring the edit
// form.
type UpdateEmployeeRequest struct {
	ID int `json:"-"` // From URL
	CreateEmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	return r.CreateEmployeeRequest.Validate()
}

func (r *UpdateEmployeeRequest) ToEntity() Employee {
	e := r.CreateEmployeeRequest.ToEntity()
	e.ID = r.ID
	return e
}
