package leave

import (
	"testing"
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func testEmployee(id int, name string) employee.Employee {
	return employee.Employee{ID: id, Name: name, Status: employee.StatusActive}
}

func testRequest(id, employeeID int, t leave.Type, start, end time.Time, status leave.Status) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        id,
		Employee:  employee.Snapshot{ID: employeeID, Name: "Employee"},
		Type:      t,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
}

func singleRowBars(t *testing.T, rows []leave.TimelineRow) []leave.TimelineBar {
	t.Helper()
	require.Len(t, rows, 1)
	return rows[0].Bars
}

func TestLayoutMonth_FullyContainedRequest(t *testing.T) {
	// Scenario A: 2024-08-07..2024-08-14 approved, viewed in August 2024.
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 7), day(2024, time.August, 14), leave.StatusApproved),
	}

	bars := singleRowBars(t, LayoutMonth(2024, time.August, employees, requests))
	require.Len(t, bars, 1)
	assert.Equal(t, 7, bars[0].StartDay)
	assert.Equal(t, 14, bars[0].EndDay)
	assert.Equal(t, leave.CategoryVacation, bars[0].Category)
}

func TestLayoutMonth_RequestOutsideMonthIsAbsent(t *testing.T) {
	// Scenario A, adjacent months: the August request must not appear in
	// July or September at all.
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 7), day(2024, time.August, 14), leave.StatusApproved),
	}

	assert.Empty(t, singleRowBars(t, LayoutMonth(2024, time.July, employees, requests)))
	assert.Empty(t, singleRowBars(t, LayoutMonth(2024, time.September, employees, requests)))
}

func TestLayoutMonth_ClipsStartAtMonthBoundary(t *testing.T) {
	// Scenario B: 2024-07-28..2024-08-03 viewed in August clips to [1,3].
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeHomeOffice, day(2024, time.July, 28), day(2024, time.August, 3), leave.StatusApproved),
	}

	bars := singleRowBars(t, LayoutMonth(2024, time.August, employees, requests))
	require.Len(t, bars, 1)
	assert.Equal(t, 1, bars[0].StartDay)
	assert.Equal(t, 3, bars[0].EndDay)
}

func TestLayoutMonth_ClipsEndAtMonthBoundary(t *testing.T) {
	// Range starting in August and running into September clips to [28,31].
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeBusinessTrip, day(2024, time.August, 28), day(2024, time.September, 5), leave.StatusApproved),
	}

	bars := singleRowBars(t, LayoutMonth(2024, time.August, employees, requests))
	require.Len(t, bars, 1)
	assert.Equal(t, 28, bars[0].StartDay)
	assert.Equal(t, 31, bars[0].EndDay)
}

func TestLayoutMonth_SpanningRequestCoversWholeMonth(t *testing.T) {
	// July through September: August shows the full grid.
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeMedicalLeave, day(2024, time.July, 10), day(2024, time.September, 10), leave.StatusApproved),
	}

	bars := singleRowBars(t, LayoutMonth(2024, time.August, employees, requests))
	require.Len(t, bars, 1)
	assert.Equal(t, 1, bars[0].StartDay)
	assert.Equal(t, 31, bars[0].EndDay)
}

func TestLayoutMonth_ReversedRangeRendersNothing(t *testing.T) {
	// Scenario C: end before start renders no bar, silently.
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 5), day(2024, time.August, 2), leave.StatusApproved),
	}

	assert.Empty(t, singleRowBars(t, LayoutMonth(2024, time.August, employees, requests)))
}

func TestLayoutMonth_OnlyApprovedRequestsAppear(t *testing.T) {
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 5), day(2024, time.August, 9), leave.StatusPending),
		testRequest(2, 1, leave.TypeVacation, day(2024, time.August, 12), day(2024, time.August, 16), leave.StatusRejected),
		testRequest(3, 1, leave.TypeVacation, day(2024, time.August, 19), day(2024, time.August, 23), leave.StatusApproved),
	}

	bars := singleRowBars(t, LayoutMonth(2024, time.August, employees, requests))
	require.Len(t, bars, 1)
	assert.Equal(t, 3, bars[0].Request.ID)
}

func TestLayoutMonth_RowsFollowEmployeeOrderAndFilter(t *testing.T) {
	employees := []employee.Employee{
		testEmployee(2, "Bruno Lima"),
		testEmployee(1, "Ana Souza"),
	}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 1), day(2024, time.August, 2), leave.StatusApproved),
		testRequest(2, 2, leave.TypePersonal, day(2024, time.August, 10), day(2024, time.August, 11), leave.StatusApproved),
	}

	rows := LayoutMonth(2024, time.August, employees, requests)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Employee.ID)
	assert.Equal(t, 1, rows[1].Employee.ID)
	require.Len(t, rows[0].Bars, 1)
	assert.Equal(t, leave.CategoryPersonal, rows[0].Bars[0].Category)
}

func TestLayoutMonth_OverlappingBarsAreNotPacked(t *testing.T) {
	// Two approved requests overlapping in time stay on the same row, in
	// request order; no lane resolution happens.
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 5), day(2024, time.August, 15), leave.StatusApproved),
		testRequest(2, 1, leave.TypeHomeOffice, day(2024, time.August, 10), day(2024, time.August, 20), leave.StatusApproved),
	}

	bars := singleRowBars(t, LayoutMonth(2024, time.August, employees, requests))
	require.Len(t, bars, 2)
	assert.Equal(t, 1, bars[0].Request.ID)
	assert.Equal(t, 2, bars[1].Request.ID)
}

func TestLayoutMonth_EmployeeWithoutRequestsGetsEmptyRow(t *testing.T) {
	employees := []employee.Employee{testEmployee(7, "Sem Licença")}

	rows := LayoutMonth(2024, time.August, employees, nil)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Bars)
}

func TestLayoutMonth_LeapFebruary(t *testing.T) {
	// A request running past February clips to day 29 in a leap year.
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.February, 20), day(2024, time.March, 4), leave.StatusApproved),
	}

	bars := singleRowBars(t, LayoutMonth(2024, time.February, employees, requests))
	require.Len(t, bars, 1)
	assert.Equal(t, 29, bars[0].EndDay)
}

func TestTodayMarker(t *testing.T) {
	now := day(2024, time.August, 15)
	assert.Equal(t, 15, todayMarker(now, 2024, time.August))
	assert.Equal(t, 0, todayMarker(now, 2024, time.July))
	assert.Equal(t, 0, todayMarker(now, 2023, time.August))
}
