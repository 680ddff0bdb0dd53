package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
	"github.com/rh-war/hr-console-backend-go/internal/domain/report"
	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
	"github.com/rh-war/hr-console-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) report.ReportService {
	t.Helper()

	employeeRepo := memory.NewEmployeeRepository([]employee.Employee{
		{ID: 1, Name: "Ana Souza", Role: "Engenheira", Department: "Tecnologia", HireDate: day(2021, time.March, 1), Status: employee.StatusActive},
		{ID: 2, Name: "Bruno Lima", Role: "Analista", Department: "RH", HireDate: day(2022, time.May, 9), Status: employee.StatusActive},
		{ID: 3, Name: "Clara Dias", Role: "Designer", Department: "Tecnologia", HireDate: day(2020, time.January, 20), Status: employee.StatusInactive},
	})
	leaveRepo := memory.NewLeaveRequestRepository([]leave.LeaveRequest{
		{ID: 1, Employee: employee.Snapshot{ID: 1, Name: "Ana Souza"}, Type: leave.TypeVacation, StartDate: day(2024, time.August, 7), EndDate: day(2024, time.August, 14), Status: leave.StatusApproved},
		{ID: 2, Employee: employee.Snapshot{ID: 2, Name: "Bruno Lima"}, Type: leave.TypePersonal, StartDate: day(2024, time.August, 1), EndDate: day(2024, time.August, 2), Status: leave.StatusPending},
		{ID: 3, Employee: employee.Snapshot{ID: 2, Name: "Bruno Lima"}, Type: leave.TypeVacation, StartDate: day(2024, time.July, 1), EndDate: day(2024, time.July, 5), Status: leave.StatusRejected},
	})
	jobRepo := memory.NewJobRepository([]recruitment.Job{
		{ID: 1, Title: "Engenheira de Dados", Department: "Dados", Status: recruitment.JobStatusOpen},
		{ID: 2, Title: "Analista de RH", Department: "RH", Status: recruitment.JobStatusClosed},
	})
	stageRepo := memory.NewStageRepository([]recruitment.Stage{
		{ID: 1, Name: "Triagem", Order: 1},
		{ID: 2, Name: "Entrevista", Order: 2},
	})
	candidateRepo := memory.NewCandidateRepository([]recruitment.Candidate{
		{ID: 1, Name: "Carla Nunes", JobID: 1, StageID: 1},
		{ID: 2, Name: "Diego Ramos", JobID: 1, StageID: 2},
	})
	reviewRepo := memory.NewReviewRepository([]review.Review{
		{ID: 1, Employee: employee.Snapshot{ID: 1, Name: "Ana Souza"}, Date: day(2024, time.June, 10), Reviewer: "Maria Silva", Feedback: "Ótimo trabalho.", Rating: 5},
	})

	return NewReportService(employeeRepo, leaveRepo, jobRepo, stageRepo, candidateRepo, reviewRepo)
}

func TestLeaveReport_IncludesRejectedRows(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	r, err := svc.LeaveReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, r.TotalRequests)
	assert.Len(t, r.Rows, 3)
	assert.Equal(t, 2, r.ByType[leave.TypeVacation])
	assert.Equal(t, 1, r.ByStatus[leave.StatusRejected])
}

func TestEmployeeReport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	r, err := svc.EmployeeReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 2, r.ByDepartment["Tecnologia"])
	assert.Equal(t, 2, r.ByStatus["Active"])
	assert.Equal(t, "2021-03-01", r.Rows[0].HireDate)
}

func TestRecruitmentReport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	r, err := svc.RecruitmentReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, r.TotalCandidates)
	assert.Equal(t, 1, r.OpenJobs)
	assert.Equal(t, 1, r.ByStage["Triagem"])
	assert.Equal(t, 2, r.ByJob["Engenheira de Dados"])
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	summary, err := svc.DashboardSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, report.DashboardSummary{
		ActiveEmployees: 2,
		PendingLeaves:   1,
		ApprovedLeaves:  1,
		OpenJobs:        1,
		Candidates:      2,
		Reviews:         1,
	}, summary)
}

func TestExportCSV_Leave(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	export, err := svc.ExportCSV(ctx, report.KindLeave)
	require.NoError(t, err)

	assert.Contains(t, export.Filename, "leave-report-")
	assert.Equal(t, "text/csv; charset=utf-8", export.ContentType)

	lines := strings.Split(strings.TrimSpace(string(export.Data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,employee,type,start_date,end_date,status", lines[0])
	assert.Contains(t, lines[1], "Ana Souza")
}

func TestExportCSV_UnknownKind(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.ExportCSV(ctx, report.Kind("payroll"))
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestExportDocument_Employees(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	export, err := svc.ExportDocument(ctx, report.KindEmployees)
	require.NoError(t, err)

	assert.Equal(t, "text/html; charset=utf-8", export.ContentType)
	html := string(export.Data)
	assert.Contains(t, html, "Relatório de Colaboradores")
	assert.Contains(t, html, "Ana Souza")
	assert.Contains(t, html, "window.print()")
}
