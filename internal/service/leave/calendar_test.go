package leave

import (
	"testing"
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestsOnDay_IncludesPendingAndApproved(t *testing.T) {
	// Scenario D: Aug 3 returns the pending and approved requests covering
	// it and skips the rejected one.
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 1), day(2024, time.August, 5), leave.StatusApproved),
		testRequest(2, 2, leave.TypePersonal, day(2024, time.August, 3), day(2024, time.August, 3), leave.StatusPending),
		testRequest(3, 3, leave.TypeMedicalLeave, day(2024, time.August, 2), day(2024, time.August, 10), leave.StatusRejected),
		testRequest(4, 4, leave.TypeHomeOffice, day(2024, time.August, 4), day(2024, time.August, 8), leave.StatusApproved),
	}

	matched := RequestsOnDay(day(2024, time.August, 3), requests)
	require.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 2, matched[1].ID)
}

func TestRequestsOnDay_InclusiveBounds(t *testing.T) {
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 7), day(2024, time.August, 14), leave.StatusApproved),
	}

	assert.Len(t, RequestsOnDay(day(2024, time.August, 7), requests), 1)
	assert.Len(t, RequestsOnDay(day(2024, time.August, 14), requests), 1)
	assert.Empty(t, RequestsOnDay(day(2024, time.August, 6), requests))
	assert.Empty(t, RequestsOnDay(day(2024, time.August, 15), requests))
}

func TestRequestsOnDay_PendingVisibleHereButNotOnTimeline(t *testing.T) {
	// The asymmetry between the two views: a pending request shows on the
	// calendar day but produces no timeline bar.
	employees := []employee.Employee{testEmployee(1, "Ana Souza")}
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 5), day(2024, time.August, 9), leave.StatusPending),
	}

	assert.Len(t, RequestsOnDay(day(2024, time.August, 6), requests), 1)
	assert.Empty(t, singleRowBars(t, LayoutMonth(2024, time.August, employees, requests)))
}

func TestRequestsOnDay_ReversedRangeMatchesNothing(t *testing.T) {
	requests := []leave.LeaveRequest{
		testRequest(1, 1, leave.TypeVacation, day(2024, time.August, 5), day(2024, time.August, 2), leave.StatusApproved),
	}

	for d := 1; d <= 10; d++ {
		assert.Empty(t, RequestsOnDay(day(2024, time.August, d), requests))
	}
}
