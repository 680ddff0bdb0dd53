package leave

import (
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
)

// Type is the leave/absence category.
type Type string

const (
	TypeVacation     Type = "Vacation"
	TypeMedicalLeave Type = "MedicalLeave"
	TypeHomeOffice   Type = "HomeOffice"
	TypeBusinessTrip Type = "BusinessTrip"
	TypePersonal     Type = "Personal"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVacation, TypeMedicalLeave, TypeHomeOffice, TypeBusinessTrip, TypePersonal:
		return true
	}
	return false
}

// VisualCategory is the cosmetic grouping used to style timeline bars and
// calendar chips. It carries no business meaning.
type VisualCategory string

const (
	CategoryVacation     VisualCategory = "vacation"
	CategoryMedical      VisualCategory = "medical"
	CategoryHomeOffice   VisualCategory = "home-office"
	CategoryBusinessTrip VisualCategory = "business-trip"
	CategoryPersonal     VisualCategory = "personal"
	CategoryDefault      VisualCategory = "default"
)

var visualCategories = map[Type]VisualCategory{
	TypeVacation:     CategoryVacation,
	TypeMedicalLeave: CategoryMedical,
	TypeHomeOffice:   CategoryHomeOffice,
	TypeBusinessTrip: CategoryBusinessTrip,
	TypePersonal:     CategoryPersonal,
}

// CategoryFor returns the visual category for a leave type, falling back to
// the default style for anything outside the fixed table.
func CategoryFor(t Type) VisualCategory {
	if c, ok := visualCategories[t]; ok {
		return c
	}
	return CategoryDefault
}

// Status is the approval state of a request. All three states are mutually
// reachable; there is no terminal state and no transition history.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveRequest is an employee's application for time away from work. The
// embedded employee snapshot is denormalized: deleting or editing the
// directory record elsewhere does not touch it. StartDate and EndDate are
// an inclusive range; start <= end is assumed by the views but deliberately
// not validated, and a reversed range simply renders nothing.
type LeaveRequest struct {
	ID        int
	Employee  employee.Snapshot
	Type      Type
	StartDate time.Time
	EndDate   time.Time
	Status    Status
}
