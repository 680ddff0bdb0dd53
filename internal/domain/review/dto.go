package review

import (
	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
)

type ReviewResponse struct {
	ID           int               `json:"id"`
	Employee     employee.Snapshot `json:"employee"`
	Date         string            `json:"date"`
	Reviewer     string            `json:"reviewer"`
	Feedback     string            `json:"feedback"`
	Rating       int               `json:"rating"`
	AISuggestion string            `json:"ai_suggestion,omitempty"`
}

func ToResponse(r Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		Employee:     r.Employee,
		Date:         dateutil.FormatDate(r.Date),
		Reviewer:     r.Reviewer,
		Feedback:     r.Feedback,
		Rating:       r.Rating,
		AISuggestion: r.AISuggestion,
	}
}

type CreateReviewRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Reviewer   string `json:"reviewer"`
	Feedback   string `json:"feedback"`
	Rating     int    `json:"rating"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.Reviewer) {
		errs = append(errs, validator.ValidationError{
			Field:   "reviewer",
			Message: "reviewer is required",
		})
	}

	if validator.IsEmpty(r.Feedback) {
		errs = append(errs, validator.ValidationError{
			Field:   "feedback",
			Message: "feedback is required",
		})
	}

	if !validator.IsValidRating(r.Rating) {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateReviewRequest struct {
	ID int `json:"-"` // From URL
	CreateReviewRequest
}

func (r *UpdateReviewRequest) Validate() error {
	return r.CreateReviewRequest.Validate()
}
