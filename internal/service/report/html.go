package report

import (
	"bytes"
	"html/template"
)

// printableTemplate is a self-contained document meant for the browser's
// print dialog, mirroring the printable sheets the admin UI offers.
var printableTemplate = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 32px; color: #222; }
  h1 { font-size: 20px; margin-bottom: 4px; }
  .meta { color: #666; font-size: 12px; margin-bottom: 16px; }
  table { border-collapse: collapse; width: 100%; font-size: 13px; }
  th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
  th { background: #f2f2f2; }
  tr:nth-child(even) td { background: #fafafa; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">Period: {{.Period}} &middot; Generated: {{.Generated}}</div>
<table>
<thead>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{else}}<tr><td colspan="{{len .Columns}}">No records in the selected period</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

func renderPrintable(data table) ([]byte, error) {
	var buf bytes.Buffer
	if err := printableTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
