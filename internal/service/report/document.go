package report

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/rh-war/hr-console-backend-go/internal/domain/report"
)

const htmlContentType = "text/html; charset=utf-8"

// The document export is a self-contained print-oriented HTML page: the
// client opens it and triggers the browser print dialog to produce a PDF.
var documentTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 2rem; color: #1f2937; }
h1 { font-size: 1.4rem; border-bottom: 2px solid #1f2937; padding-bottom: .4rem; }
p.meta { color: #6b7280; font-size: .85rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #d1d5db; padding: .4rem .6rem; font-size: .85rem; text-align: left; }
th { background: #f3f4f6; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Gerado em {{.GeneratedAt}} — {{.Summary}}</p>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
<script>window.addEventListener("load", function () { window.print(); });</script>
</body>
</html>
`))

type documentData struct {
	Title       string
	GeneratedAt string
	Summary     string
	Headers     []string
	Rows        [][]string
}

func renderDocument(filename string, data documentData) (report.Export, error) {
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return report.Export{}, err
	}
	return report.Export{
		Filename:    filename,
		ContentType: htmlContentType,
		Data:        buf.Bytes(),
	}, nil
}

func exportLeaveDocument(r report.LeaveReport) (report.Export, error) {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Employee.Name,
			string(row.Type),
			row.StartDate,
			row.EndDate,
			string(row.Status),
		})
	}
	return renderDocument("leave-report-"+r.GeneratedAt+".html", documentData{
		Title:       "Relatório de Licenças",
		GeneratedAt: r.GeneratedAt,
		Summary:     plural(r.TotalRequests, "solicitação", "solicitações"),
		Headers:     []string{"Colaborador", "Tipo", "Início", "Fim", "Status"},
		Rows:        rows,
	})
}

func exportEmployeeDocument(r report.EmployeeReport) (report.Export, error) {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Name,
			row.Role,
			row.Department,
			row.HireDate,
			row.Status,
		})
	}
	return renderDocument("employee-report-"+r.GeneratedAt+".html", documentData{
		Title:       "Relatório de Colaboradores",
		GeneratedAt: r.GeneratedAt,
		Summary:     plural(r.Total, "colaborador", "colaboradores"),
		Headers:     []string{"Nome", "Cargo", "Departamento", "Admissão", "Status"},
		Rows:        rows,
	})
}

func exportRecruitmentDocument(r report.RecruitmentReport) (report.Export, error) {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Candidate,
			row.Job,
			row.Stage,
		})
	}
	return renderDocument("recruitment-report-"+r.GeneratedAt+".html", documentData{
		Title:       "Relatório de Recrutamento",
		GeneratedAt: r.GeneratedAt,
		Summary:     plural(r.TotalCandidates, "candidato", "candidatos"),
		Headers:     []string{"Candidato", "Vaga", "Etapa"},
		Rows:        rows,
	})
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + pluralForm
}
