package report

import "context"

type ReportService interface {
	LeaveReport(ctx context.Context) (LeaveReport, error)
	EmployeeReport(ctx context.Context) (EmployeeReport, error)
	RecruitmentReport(ctx context.Context) (RecruitmentReport, error)
	DashboardSummary(ctx context.Context) (DashboardSummary, error)

	// ExportCSV serializes the selected report as CSV; ExportDocument
	// renders it as a print-oriented HTML document for the PDF flow.
	ExportCSV(ctx context.Context, kind Kind) (Export, error)
	ExportDocument(ctx context.Context, kind Kind) (Export, error)
}
