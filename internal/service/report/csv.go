package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rh-war/hr-console-backend-go/internal/domain/report"
)

const csvContentType = "text/csv; charset=utf-8"

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportLeaveCSV(r report.LeaveReport) (report.Export, error) {
	records := [][]string{
		{"id", "employee", "type", "start_date", "end_date", "status"},
	}
	for _, row := range r.Rows {
		records = append(records, []string{
			strconv.Itoa(row.ID),
			row.Employee.Name,
			string(row.Type),
			row.StartDate,
			row.EndDate,
			string(row.Status),
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename:    "leave-report-" + r.GeneratedAt + ".csv",
		ContentType: csvContentType,
		Data:        data,
	}, nil
}

func exportEmployeeCSV(r report.EmployeeReport) (report.Export, error) {
	records := [][]string{
		{"id", "name", "role", "department", "hire_date", "status"},
	}
	for _, row := range r.Rows {
		records = append(records, []string{
			strconv.Itoa(row.ID),
			row.Name,
			row.Role,
			row.Department,
			row.HireDate,
			row.Status,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename:    "employee-report-" + r.GeneratedAt + ".csv",
		ContentType: csvContentType,
		Data:        data,
	}, nil
}

func exportRecruitmentCSV(r report.RecruitmentReport) (report.Export, error) {
	records := [][]string{
		{"candidate_id", "candidate", "job", "stage"},
	}
	for _, row := range r.Rows {
		records = append(records, []string{
			strconv.Itoa(row.CandidateID),
			row.Candidate,
			row.Job,
			row.Stage,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename:    "recruitment-report-" + r.GeneratedAt + ".csv",
		ContentType: csvContentType,
		Data:        data,
	}, nil
}
