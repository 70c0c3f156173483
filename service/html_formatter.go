package service

import (
	"html/template"
	"io"

	"github.com/Allancgx/warnings-ng-plugin/domain"
)

// HTMLData represents the data for the HTML template
type HTMLData struct {
	GeneratedAt string
	Version     string
	Status      domain.Status
	Summary     domain.EvaluateSummary
	Reports     []domain.ReportEvaluation
	Warnings    []string
}

// writeHTML writes the evaluation response as a standalone HTML page,
// suitable for archiving as a build artifact
func (f *OutputFormatterImpl) writeHTML(response *domain.EvaluateResponse, writer io.Writer) error {
	data := HTMLData{
		GeneratedAt: response.GeneratedAt,
		Version:     response.Version,
		Status:      response.Status,
		Summary:     response.Summary,
		Reports:     response.Reports,
		Warnings:    response.Warnings,
	}

	funcMap := template.FuncMap{
		"label": func(s domain.Status) string {
			return statusLabel(s)
		},
		"statusClass": func(s domain.Status) string {
			return "status-" + string(s)
		},
	}

	tmpl := template.Must(template.New("evaluation").Funcs(funcMap).Parse(htmlTemplate))
	return tmpl.Execute(writer, data)
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Quality Gate Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }
        .container {
            max-width: 1000px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background: white;
            border-radius: 10px;
            padding: 30px;
            margin-bottom: 20px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
        }
        .header h1 {
            color: #667eea;
            margin-bottom: 10px;
        }
        .header .subtitle {
            color: #666;
            font-size: 14px;
        }
        .status-badge {
            display: inline-block;
            padding: 10px 20px;
            border-radius: 50px;
            font-size: 24px;
            font-weight: bold;
            margin: 10px 0;
            color: white;
        }
        .status-success { background: #4caf50; }
        .status-unstable { background: #ff9800; }
        .status-failure { background: #f44336; }

        .panel {
            background: white;
            border-radius: 10px;
            padding: 30px;
            margin-bottom: 20px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
        }
        .panel h2 {
            margin-bottom: 10px;
        }

        .metric-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 20px;
            margin: 20px 0;
        }
        .metric-card {
            background: #f8f9fa;
            padding: 20px;
            border-radius: 8px;
            text-align: center;
        }
        .metric-value {
            font-size: 32px;
            font-weight: bold;
            color: #667eea;
        }
        .metric-label {
            color: #666;
            margin-top: 5px;
        }

        .table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
        }
        .table th, .table td {
            padding: 12px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }
        .table th {
            background: #f8f9fa;
            font-weight: 600;
        }

        .verdict-success { color: #4caf50; font-weight: bold; }
        .verdict-unstable { color: #ff9800; font-weight: bold; }
        .verdict-failure { color: #f44336; font-weight: bold; }

        .violation {
            color: #666;
            font-size: 13px;
            padding-left: 12px;
        }
        .warning {
            color: #ff9800;
            font-size: 14px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Quality Gate Report</h1>
            <p class="subtitle">Generated: {{.GeneratedAt}} | Version: {{.Version}}</p>
            <div class="status-badge {{statusClass .Status}}">{{label .Status}}</div>
        </div>

        <div class="panel">
            <h2>Summary</h2>
            <div class="metric-grid">
                <div class="metric-card">
                    <div class="metric-value">{{.Summary.ReportsEvaluated}}</div>
                    <div class="metric-label">Reports Evaluated</div>
                </div>
                <div class="metric-card">
                    <div class="metric-value">{{.Summary.TotalIssues}}</div>
                    <div class="metric-label">Total Issues</div>
                </div>
                <div class="metric-card">
                    <div class="metric-value">{{.Summary.NewIssues}}</div>
                    <div class="metric-label">New Issues</div>
                </div>
                <div class="metric-card">
                    <div class="metric-value">{{.Summary.TotalViolations}}</div>
                    <div class="metric-label">Violations</div>
                </div>
            </div>
        </div>

        <div class="panel">
            <h2>Reports</h2>
            <table class="table">
                <thead>
                    <tr>
                        <th>Report</th>
                        <th>Tool</th>
                        <th>Issues</th>
                        <th>New</th>
                        <th>Verdict</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Reports}}
                    <tr>
                        <td>{{.Path}}</td>
                        <td>{{.Tool}}</td>
                        <td>{{.Stats.Total}}</td>
                        <td>{{.Stats.New}}</td>
                        <td class="verdict-{{.Status}}">{{label .Status}}</td>
                    </tr>
                    {{if .Violations}}
                    <tr>
                        <td colspan="5">
                            {{range .Violations}}<div class="violation">{{.}}</div>{{end}}
                        </td>
                    </tr>
                    {{end}}
                    {{end}}
                </tbody>
            </table>
        </div>

        {{if .Warnings}}
        <div class="panel">
            <h2>Warnings</h2>
            {{range .Warnings}}<div class="warning">{{.}}</div>{{end}}
        </div>
        {{end}}
    </div>
</body>
</html>`
