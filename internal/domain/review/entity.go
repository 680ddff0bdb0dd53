package review

import (
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
)

// Review is a performance review. The employee snapshot is denormalized at
// creation time. AISuggestion holds optional generated coaching text and is
// empty until requested.
type Review struct {
	ID           int
	Employee     employee.Snapshot
	Date         time.Time
	Reviewer     string
	Feedback     string
	Rating       int
	AISuggestion string
}
