package response

import (
	"errors"
	"net/http"

	"github.com/rh-war/hr-console-backend-go/internal/domain/auth"
	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/contract"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/department"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/role"
	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
	"github.com/rh-war/hr-console-backend-go/internal/service/assist"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrLoginExists):
		Conflict(w, "Login already in use")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCPFExists):
		Conflict(w, "CPF already registered")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department with this name already exists")
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract type not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, recruitment.ErrStageNotFound):
		NotFound(w, "Stage not found")
	case errors.Is(err, recruitment.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")

	// Review domain errors
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Performance review not found")

	// Assist errors
	case errors.Is(err, assist.ErrAssistDisabled):
		ServiceUnavailable(w, "Text generation is not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
