package role

import "github.com/rh-war/hr-console-backend-go/internal/pkg/validator"

// Role is a job title attached to a department. Salary is kept as the
// display string the console captures, not a monetary type.
type Role struct {
	ID           int
	Name         string
	DepartmentID int
	Salary       string
}

type RoleResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DepartmentID int    `json:"department_id"`
	Salary       string `json:"salary,omitempty"`
}

type CreateRoleRequest struct {
	Name         string `json:"name"`
	DepartmentID int    `json:"department_id"`
	Salary       string `json:"salary,omitempty"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	ID           int     `json:"-"` // From URL
	Name         *string `json:"name,omitempty"`
	DepartmentID *int    `json:"department_id,omitempty"`
	Salary       *string `json:"salary,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if r.DepartmentID != nil && *r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
