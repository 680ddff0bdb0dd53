package leave

import (
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
)

// LayoutMonth computes the timeline rows for one month: for each employee,
// every Approved request touching the month becomes a bar clipped to the
// month's day-column grid. Employees arrive pre-filtered (name search) and
// ordered; requests arrive unfiltered.
//
// Bars keep request order and may overlap within a row; no lane packing is
// performed. A request whose clipped span is empty (endDay < startDay, the
// reversed-range case) produces no bar at all.
func LayoutMonth(year int, month time.Month, employees []employee.Employee, requests []leave.LeaveRequest) []leave.TimelineRow {
	daysInMonth := dateutil.DaysInMonth(year, month)

	rows := make([]leave.TimelineRow, 0, len(employees))
	for _, emp := range employees {
		row := leave.TimelineRow{
			Employee: emp.Snapshot(),
			Bars:     []leave.TimelineBar{},
		}

		for _, req := range requests {
			if req.Employee.ID != emp.ID || req.Status != leave.StatusApproved {
				continue
			}

			bar, ok := clipToMonth(req, year, month, daysInMonth)
			if !ok {
				continue
			}
			row.Bars = append(row.Bars, bar)
		}

		rows = append(rows, row)
	}
	return rows
}

// clipToMonth computes the visible span of a request within (year, month).
// The month-intersection test compares year and month, never raw days, so a
// request running from the previous month into the next one still covers
// the full grid.
func clipToMonth(req leave.LeaveRequest, year int, month time.Month, daysInMonth int) (leave.TimelineBar, bool) {
	// Entirely after the displayed month.
	if dateutil.AfterMonth(req.StartDate, year, month) {
		return leave.TimelineBar{}, false
	}
	// Entirely before the displayed month.
	if dateutil.BeforeMonth(req.EndDate, year, month) {
		return leave.TimelineBar{}, false
	}

	startDay := req.StartDate.Day()
	if dateutil.BeforeMonth(req.StartDate, year, month) {
		startDay = 1
	}

	endDay := req.EndDate.Day()
	if dateutil.AfterMonth(req.EndDate, year, month) {
		endDay = daysInMonth
	}

	// Reversed or fully clipped-out range: nothing to render, not an error.
	if endDay < startDay {
		return leave.TimelineBar{}, false
	}

	return leave.TimelineBar{
		Request:  leave.ToResponse(req),
		StartDay: startDay,
		EndDay:   endDay,
		Category: leave.CategoryFor(req.Type),
	}, true
}

// todayMarker returns the 1-based day to highlight when now falls inside
// the displayed month, 0 otherwise. Display concern only.
func todayMarker(now time.Time, year int, month time.Month) int {
	if now.Year() == year && now.Month() == month {
		return now.Day()
	}
	return 0
}
