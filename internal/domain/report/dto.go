package report

import (
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
)

// Kind selects which report to generate or export.
type Kind string

const (
	KindLeave       Kind = "leave"
	KindEmployees   Kind = "employees"
	KindRecruitment Kind = "recruitment"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLeave, KindEmployees, KindRecruitment:
		return true
	}
	return false
}

// ParseKind validates a report kind from a URL segment.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", validator.ValidationErrors{{
			Field:   "kind",
			Message: "kind must be one of leave, employees, recruitment",
		}}
	}
	return k, nil
}

// LeaveReport aggregates the full request collection, Rejected included —
// the history table shows everything even though the visualizations hide
// rejected requests.
type LeaveReport struct {
	GeneratedAt   string                       `json:"generated_at"`
	TotalRequests int                          `json:"total_requests"`
	ByType        map[leave.Type]int           `json:"by_type"`
	ByStatus      map[leave.Status]int         `json:"by_status"`
	Rows          []leave.LeaveRequestResponse `json:"rows"`
}

type EmployeeReportRow struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	HireDate   string `json:"hire_date"`
	Status     string `json:"status"`
}

type EmployeeReport struct {
	GeneratedAt  string              `json:"generated_at"`
	Total        int                 `json:"total"`
	ByDepartment map[string]int      `json:"by_department"`
	ByStatus     map[string]int      `json:"by_status"`
	Rows         []EmployeeReportRow `json:"rows"`
}

type RecruitmentReportRow struct {
	CandidateID int    `json:"candidate_id"`
	Candidate   string `json:"candidate"`
	Job         string `json:"job"`
	Stage       string `json:"stage"`
}

type RecruitmentReport struct {
	GeneratedAt     string                 `json:"generated_at"`
	TotalCandidates int                    `json:"total_candidates"`
	OpenJobs        int                    `json:"open_jobs"`
	ByStage         map[string]int         `json:"by_stage"`
	ByJob           map[string]int         `json:"by_job"`
	Rows            []RecruitmentReportRow `json:"rows"`
}

// DashboardSummary is the landing-page counters block.
type DashboardSummary struct {
	ActiveEmployees int `json:"active_employees"`
	PendingLeaves   int `json:"pending_leaves"`
	ApprovedLeaves  int `json:"approved_leaves"`
	OpenJobs        int `json:"open_jobs"`
	Candidates      int `json:"candidates"`
	Reviews         int `json:"reviews"`
}

// Export is a serialized report ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
