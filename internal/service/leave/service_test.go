package leave

import (
	"context"
	"testing"
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, requests []leave.LeaveRequest) (leave.LeaveService, *memory.LeaveRequestRepository) {
	t.Helper()
	requestRepo := memory.NewLeaveRequestRepository(requests)
	employeeRepo := memory.NewEmployeeRepository([]employee.Employee{
		{ID: 1, Name: "Ana Souza", Status: employee.StatusActive},
		{ID: 2, Name: "Bruno Lima", Status: employee.StatusActive},
	})
	return NewLeaveService(requestRepo, employeeRepo), requestRepo
}

func seedRequest(id, employeeID int, status leave.Status) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        id,
		Employee:  employee.Snapshot{ID: employeeID, Name: "Ana Souza"},
		Type:      leave.TypeVacation,
		StartDate: day(2024, time.August, 7),
		EndDate:   day(2024, time.August, 14),
		Status:    status,
	}
}

func TestCreateRequest_StartsPending(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: 1,
		Type:       leave.TypeVacation,
		StartDate:  "2024-08-07",
		EndDate:    "2024-08-14",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, 1, created.Employee.ID)
	assert.Equal(t, "Ana Souza", created.Employee.Name)
	assert.Equal(t, "2024-08-07", created.StartDate)
	assert.Equal(t, "2024-08-14", created.EndDate)
}

func TestCreateRequest_AssignsMaxIDPlusOne(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{
		seedRequest(3, 1, leave.StatusApproved),
		seedRequest(7, 2, leave.StatusPending),
	})

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: 1,
		Type:       leave.TypePersonal,
		StartDate:  "2024-09-01",
		EndDate:    "2024-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
}

func TestCreateRequest_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	_, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: 99,
		Type:       leave.TypeVacation,
		StartDate:  "2024-08-07",
		EndDate:    "2024-08-14",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApproveRequest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{seedRequest(1, 1, leave.StatusPending)})

	require.NoError(t, svc.ApproveRequest(ctx, 1))

	got, err := svc.GetRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
}

func TestApproveRequest_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{seedRequest(1, 1, leave.StatusApproved)})

	require.NoError(t, svc.ApproveRequest(ctx, 1))

	got, err := svc.GetRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
}

func TestRevertToPending_RoundTripKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	original := seedRequest(1, 1, leave.StatusPending)
	svc, _ := newTestService(t, []leave.LeaveRequest{original})

	require.NoError(t, svc.ApproveRequest(ctx, 1))
	require.NoError(t, svc.RevertRequestToPending(ctx, 1))

	got, err := svc.GetRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, got.Status)
	assert.Equal(t, original.Employee, got.Employee)
	assert.Equal(t, original.Type, got.Type)
	assert.Equal(t, "2024-08-07", got.StartDate)
	assert.Equal(t, "2024-08-14", got.EndDate)
}

func TestRejectThenRevert(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{seedRequest(1, 1, leave.StatusPending)})

	require.NoError(t, svc.RejectRequest(ctx, 1))
	got, err := svc.GetRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, got.Status)

	require.NoError(t, svc.RevertRequestToPending(ctx, 1))
	got, err = svc.GetRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, got.Status)
}

func TestStatusChange_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{seedRequest(1, 1, leave.StatusPending)})

	require.NoError(t, svc.ApproveRequest(ctx, 42))

	all, err := svc.ListRequests(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, leave.StatusPending, all[0].Status)
}

func TestDeleteRequest_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	// Scenario E
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{
		seedRequest(1, 1, leave.StatusPending),
		seedRequest(2, 2, leave.StatusApproved),
	})

	require.NoError(t, svc.DeleteRequest(ctx, 99))

	all, err := svc.ListRequests(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 2, all[1].ID)
}

func TestDeleteRequest_RemovesRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{
		seedRequest(1, 1, leave.StatusPending),
		seedRequest(2, 2, leave.StatusApproved),
	})

	require.NoError(t, svc.DeleteRequest(ctx, 1))

	all, err := svc.ListRequests(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].ID)
}

func TestUpdateRequest_FullOverwriteMaySetAnyStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{seedRequest(1, 1, leave.StatusPending)})

	err := svc.UpdateRequest(ctx, leave.UpdateLeaveRequestRequest{
		ID:         1,
		EmployeeID: 2,
		Type:       leave.TypeMedicalLeave,
		StartDate:  "2024-09-10",
		EndDate:    "2024-09-12",
		Status:     leave.StatusApproved,
	})
	require.NoError(t, err)

	got, err := svc.GetRequest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Employee.ID)
	assert.Equal(t, leave.TypeMedicalLeave, got.Type)
	assert.Equal(t, leave.StatusApproved, got.Status)
	assert.Equal(t, "2024-09-10", got.StartDate)
}

func TestListRequests_StatusFilter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{
		seedRequest(1, 1, leave.StatusPending),
		seedRequest(2, 1, leave.StatusApproved),
		seedRequest(3, 2, leave.StatusRejected),
	})

	approved := leave.StatusApproved
	got, err := svc.ListRequests(ctx, leave.LeaveRequestFilter{Status: &approved})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	all, err := svc.ListRequests(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTimelineMonth_SearchFiltersRows(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{seedRequest(1, 1, leave.StatusApproved)})

	timeline, err := svc.TimelineMonth(ctx, 2024, time.August, "ana")
	require.NoError(t, err)
	require.Len(t, timeline.Rows, 1)
	assert.Equal(t, "Ana Souza", timeline.Rows[0].Employee.Name)
	assert.Equal(t, 31, timeline.DaysInMonth)
	require.Len(t, timeline.Rows[0].Bars, 1)
	assert.Equal(t, 7, timeline.Rows[0].Bars[0].StartDay)
	assert.Equal(t, 14, timeline.Rows[0].Bars[0].EndDay)
}

func TestCalendarMonth_RejectedExcludedEveryDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{
		seedRequest(1, 1, leave.StatusRejected),
	})

	calendar, err := svc.CalendarMonth(ctx, 2024, time.August)
	require.NoError(t, err)
	require.Len(t, calendar.Days, 31)
	for _, d := range calendar.Days {
		assert.Empty(t, d.Requests, d.Date)
	}
}

func TestCalendarMonth_PendingVisible(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, []leave.LeaveRequest{
		seedRequest(1, 1, leave.StatusPending),
	})

	calendar, err := svc.CalendarMonth(ctx, 2024, time.August)
	require.NoError(t, err)
	assert.Len(t, calendar.Days[6].Requests, 1)  // Aug 7
	assert.Len(t, calendar.Days[13].Requests, 1) // Aug 14
	assert.Empty(t, calendar.Days[14].Requests)  // Aug 15
}
