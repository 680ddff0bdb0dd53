package leave

import (
	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
)

var (
	validTypes = []string{
		string(TypeVacation),
		string(TypeMedicalLeave),
		string(TypeHomeOffice),
		string(TypeBusinessTrip),
		string(TypePersonal),
	}
	validStatuses = []string{
		string(StatusPending),
		string(StatusApproved),
		string(StatusRejected),
	}
)

type LeaveRequestResponse struct {
	ID        int               `json:"id"`
	Employee  employee.Snapshot `json:"employee"`
	Type      Type              `json:"type"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Status    Status            `json:"status"`
}

func ToResponse(req LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:        req.ID,
		Employee:  req.Employee,
		Type:      req.Type,
		StartDate: dateutil.FormatDate(req.StartDate),
		EndDate:   dateutil.FormatDate(req.EndDate),
		Status:    req.Status,
	}
}

// CreateLeaveRequestRequest is the quick-create path: the new request
// always starts as Pending.
type CreateLeaveRequestRequest struct {
	EmployeeID int    `json:"employee_id"`
	Type       Type   `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if !validator.IsInSlice(string(r.Type), validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of Vacation, MedicalLeave, HomeOffice, BusinessTrip, Personal",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	// start_date <= end_date is deliberately not enforced: the views treat
	// a reversed range as an empty span.

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateLeaveRequestRequest is the edit form: a full overwrite that may set
// any status directly, bypassing the quick-action state machine.
type UpdateLeaveRequestRequest struct {
	ID         int    `json:"-"` // From URL
	EmployeeID int    `json:"employee_id"`
	Type       Type   `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     Status `json:"status"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if !validator.IsInSlice(string(r.Type), validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of Vacation, MedicalLeave, HomeOffice, BusinessTrip, Personal",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if !validator.IsInSlice(string(r.Status), validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Pending, Approved, Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestFilter narrows the history list. Zero value means no
// filtering.
type LeaveRequestFilter struct {
	Status *Status
}

// TimelineBar is one rendered span on an employee's timeline row, already
// clipped to the displayed month.
type TimelineBar struct {
	Request  LeaveRequestResponse `json:"request"`
	StartDay int                  `json:"start_day"`
	EndDay   int                  `json:"end_day"`
	Category VisualCategory       `json:"category"`
}

// TimelineRow is one employee's row. Bars keep request order; overlapping
// spans are not packed into lanes.
type TimelineRow struct {
	Employee employee.Snapshot `json:"employee"`
	Bars     []TimelineBar     `json:"bars"`
}

// TimelineResponse is the month grid for the staffing timeline view.
// Today is the 1-based day-of-month to highlight, or 0 when today falls
// outside the displayed month.
type TimelineResponse struct {
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	DaysInMonth int           `json:"days_in_month"`
	Today       int           `json:"today,omitempty"`
	Rows        []TimelineRow `json:"rows"`
}

// CalendarDayResponse is one cell of the month-grid calendar: every
// non-rejected request covering that day, Pending ones included.
type CalendarDayResponse struct {
	Date     string                 `json:"date"`
	Day      int                    `json:"day"`
	Requests []LeaveRequestResponse `json:"requests"`
}

type CalendarMonthResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}
