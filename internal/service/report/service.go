package report

import (
	"context"
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
	"github.com/rh-war/hr-console-backend-go/internal/domain/report"
	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
)

type reportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	leaveRepo     leave.LeaveRequestRepository
	jobRepo       recruitment.JobRepository
	stageRepo     recruitment.StageRepository
	candidateRepo recruitment.CandidateRepository
	reviewRepo    review.ReviewRepository
	now           func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	jobRepo recruitment.JobRepository,
	stageRepo recruitment.StageRepository,
	candidateRepo recruitment.CandidateRepository,
	reviewRepo review.ReviewRepository,
) report.ReportService {
	return &reportServiceImpl{
		employeeRepo:  employeeRepo,
		leaveRepo:     leaveRepo,
		jobRepo:       jobRepo,
		stageRepo:     stageRepo,
		candidateRepo: candidateRepo,
		reviewRepo:    reviewRepo,
		now:           time.Now,
	}
}

func (s *reportServiceImpl) LeaveReport(ctx context.Context) (report.LeaveReport, error) {
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return report.LeaveReport{}, err
	}

	r := report.LeaveReport{
		GeneratedAt:   dateutil.FormatDate(s.now()),
		TotalRequests: len(requests),
		ByType:        make(map[leave.Type]int),
		ByStatus:      make(map[leave.Status]int),
		Rows:          make([]leave.LeaveRequestResponse, 0, len(requests)),
	}
	for _, req := range requests {
		r.ByType[req.Type]++
		r.ByStatus[req.Status]++
		r.Rows = append(r.Rows, leave.ToResponse(req))
	}
	return r, nil
}

func (s *reportServiceImpl) EmployeeReport(ctx context.Context) (report.EmployeeReport, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	r := report.EmployeeReport{
		GeneratedAt:  dateutil.FormatDate(s.now()),
		Total:        len(employees),
		ByDepartment: make(map[string]int),
		ByStatus:     make(map[string]int),
		Rows:         make([]report.EmployeeReportRow, 0, len(employees)),
	}
	for _, e := range employees {
		r.ByDepartment[e.Department]++
		r.ByStatus[string(e.Status)]++
		r.Rows = append(r.Rows, report.EmployeeReportRow{
			ID:         e.ID,
			Name:       e.Name,
			Role:       e.Role,
			Department: e.Department,
			HireDate:   dateutil.FormatDate(e.HireDate),
			Status:     string(e.Status),
		})
	}
	return r, nil
}

func (s *reportServiceImpl) RecruitmentReport(ctx context.Context) (report.RecruitmentReport, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return report.RecruitmentReport{}, err
	}
	stages, err := s.stageRepo.List(ctx)
	if err != nil {
		return report.RecruitmentReport{}, err
	}
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return report.RecruitmentReport{}, err
	}

	jobTitles := make(map[int]string, len(jobs))
	openJobs := 0
	for _, j := range jobs {
		jobTitles[j.ID] = j.Title
		if j.Status == recruitment.JobStatusOpen {
			openJobs++
		}
	}
	stageNames := make(map[int]string, len(stages))
	for _, st := range stages {
		stageNames[st.ID] = st.Name
	}

	r := report.RecruitmentReport{
		GeneratedAt:     dateutil.FormatDate(s.now()),
		TotalCandidates: len(candidates),
		OpenJobs:        openJobs,
		ByStage:         make(map[string]int),
		ByJob:           make(map[string]int),
		Rows:            make([]report.RecruitmentReportRow, 0, len(candidates)),
	}
	for _, c := range candidates {
		r.ByStage[stageNames[c.StageID]]++
		r.ByJob[jobTitles[c.JobID]]++
		r.Rows = append(r.Rows, report.RecruitmentReportRow{
			CandidateID: c.ID,
			Candidate:   c.Name,
			Job:         jobTitles[c.JobID],
			Stage:       stageNames[c.StageID],
		})
	}
	return r, nil
}

func (s *reportServiceImpl) DashboardSummary(ctx context.Context) (report.DashboardSummary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, err
	}
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, err
	}
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, err
	}
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, err
	}
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, err
	}

	summary := report.DashboardSummary{
		Candidates: len(candidates),
		Reviews:    len(reviews),
	}
	for _, e := range employees {
		if e.Status == employee.StatusActive {
			summary.ActiveEmployees++
		}
	}
	for _, req := range requests {
		switch req.Status {
		case leave.StatusPending:
			summary.PendingLeaves++
		case leave.StatusApproved:
			summary.ApprovedLeaves++
		}
	}
	for _, j := range jobs {
		if j.Status == recruitment.JobStatusOpen {
			summary.OpenJobs++
		}
	}
	return summary, nil
}

func (s *reportServiceImpl) ExportCSV(ctx context.Context, kind report.Kind) (report.Export, error) {
	switch kind {
	case report.KindLeave:
		r, err := s.LeaveReport(ctx)
		if err != nil {
			return report.Export{}, err
		}
		return exportLeaveCSV(r)
	case report.KindEmployees:
		r, err := s.EmployeeReport(ctx)
		if err != nil {
			return report.Export{}, err
		}
		return exportEmployeeCSV(r)
	case report.KindRecruitment:
		r, err := s.RecruitmentReport(ctx)
		if err != nil {
			return report.Export{}, err
		}
		return exportRecruitmentCSV(r)
	default:
		_, err := report.ParseKind(string(kind))
		return report.Export{}, err
	}
}

func (s *reportServiceImpl) ExportDocument(ctx context.Context, kind report.Kind) (report.Export, error) {
	switch kind {
	case report.KindLeave:
		r, err := s.LeaveReport(ctx)
		if err != nil {
			return report.Export{}, err
		}
		return exportLeaveDocument(r)
	case report.KindEmployees:
		r, err := s.EmployeeReport(ctx)
		if err != nil {
			return report.Export{}, err
		}
		return exportEmployeeDocument(r)
	case report.KindRecruitment:
		r, err := s.RecruitmentReport(ctx)
		if err != nil {
			return report.Export{}, err
		}
		return exportRecruitmentDocument(r)
	default:
		_, err := report.ParseKind(string(kind))
		return report.Export{}, err
	}
}
