package web

import (
	"html/template"
	"net/http"

	"github.com/AlexisDongMariano/aws-orphans/service/storage"
)

type indexPage struct {
	Total    int
	Cards    []indexCard
	LastScan *lastScanView
}

type indexCard struct {
	Title string
	Path  string
	Count int
}

type lastScanView struct {
	AccountID     string
	Timestamp     string
	DurationSec   int64
	FailedRegions int
	Version       string
}

type resourcePage struct {
	Title       string
	Columns     []string
	Rows        []tableRow
	Failures    []storage.RegionError
	RegionCount int
	ExportPath  string
}

type tableRow struct {
	Cells      []string
	ConsoleURL string
}

func renderTemplate(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

const pageStyle = `
    body { font-family: sans-serif; margin: 24px; color: #1f2937; }
    h1 { margin: 0 0 12px; }
    .meta { margin-bottom: 16px; color: #6b7280; }
    .cards { display: flex; gap: 16px; margin-bottom: 16px; flex-wrap: wrap; }
    .card { border: 1px solid #e5e7eb; border-radius: 10px; padding: 16px; min-width: 180px; }
    .card .count { font-size: 2em; font-weight: 700; color: #ff9900; }
    .panel { border: 1px solid #e5e7eb; border-radius: 10px; padding: 16px; margin-bottom: 16px; }
    table { width: 100%; border-collapse: collapse; margin-top: 8px; }
    th, td { border: 1px solid #e5e7eb; padding: 8px; text-align: left; }
    th { background: #f9fafb; }
    a { color: #0a66c2; text-decoration: none; }
    .error { color: #b91c1c; }
    .empty { color: #6b7280; font-style: italic; }
`

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>aws-orphans</title>
  <style>` + pageStyle + `</style>
</head>
<body>
  <h1>AWS Orphaned Resources</h1>
  {{if .LastScan}}
  <div class="meta">
    Last scan: account <code>{{.LastScan.AccountID}}</code> at {{.LastScan.Timestamp}}
    ({{.LastScan.DurationSec}}s, version {{.LastScan.Version}})
    {{if .LastScan.FailedRegions}}<span class="error"> — {{.LastScan.FailedRegions}} region(s) failed</span>{{end}}
  </div>
  {{else}}
  <div class="meta empty">No scans stored yet. Run a scan with --store first.</div>
  {{end}}
  <div class="cards">
    <div class="card"><div class="count">{{.Total}}</div>Total orphans</div>
    {{range .Cards}}
    <div class="card"><div class="count">{{.Count}}</div><a href="{{.Path}}">{{.Title}}</a></div>
    {{end}}
  </div>
  <div class="panel">
    <h3>API</h3>
    <ul>
      <li><a href="/api/regions">/api/regions</a></li>
      {{range .Cards}}<li><a href="/api{{.Path}}">/api{{.Path}}</a></li>{{end}}
      <li><a href="/api/last-scan">/api/last-scan</a></li>
    </ul>
  </div>
</body>
</html>`))

var resourceTemplate = template.Must(template.New("resource").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}} - aws-orphans</title>
  <style>` + pageStyle + `</style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="meta">
    <a href="/">&larr; back</a> |
    {{len .Rows}} orphans across {{.RegionCount}} region(s) |
    <a href="{{.ExportPath}}">Download as Excel</a>
  </div>
  {{if .Rows}}
  <table>
    <thead>
      <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        {{$url := .ConsoleURL}}
        {{range $i, $cell := .Cells}}
        <td>{{if and (eq $i 1) $url}}<a href="{{$url}}" target="_blank">{{$cell}}</a>{{else}}{{$cell}}{{end}}</td>
        {{end}}
      </tr>
      {{end}}
    </tbody>
  </table>
  {{else}}
  <p class="empty">No orphans of this type in the last stored scan.</p>
  {{end}}
  {{if .Failures}}
  <div class="panel">
    <h3 class="error">Regions that could not be scanned</h3>
    <table>
      <thead><tr><th>Region</th><th>Reason</th></tr></thead>
      <tbody>
        {{range .Failures}}<tr><td>{{.Region}}</td><td>{{.Reason}}</td></tr>{{end}}
      </tbody>
    </table>
  </div>
  {{end}}
</body>
</html>`))
