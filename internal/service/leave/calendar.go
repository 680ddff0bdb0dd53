package leave

import (
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
)

// RequestsOnDay returns every request whose inclusive [start, end] range
// contains the given day and whose status is not Rejected. Pending requests
// are included here — unlike the timeline, which shows Approved only. The
// month calendar treats pending leave as informational while the staffing
// timeline shows only committed absences; the asymmetry is deliberate.
func RequestsOnDay(day time.Time, requests []leave.LeaveRequest) []leave.LeaveRequest {
	matched := make([]leave.LeaveRequest, 0)
	for _, req := range requests {
		if req.Status == leave.StatusRejected {
			continue
		}
		if dateutil.ContainsDay(req.StartDate, req.EndDate, day) {
			matched = append(matched, req)
		}
	}
	return matched
}
