package htmlreport

// htmlTemplate is the embedded HTML template for the orphan report
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AWS Orphaned Resources - {{.AccountID}}</title>
    <style>
        :root {
            --bg-primary: #0d1117;
            --bg-secondary: #161b22;
            --bg-tertiary: #21262d;
            --text-primary: #f0f6fc;
            --text-secondary: #8b949e;
            --border-color: #30363d;
            --orphans: #d29922;
            --failed: #f85149;
            --clean: #3fb950;
            --info: #58a6ff;
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            line-height: 1.6;
            padding: 20px;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
        }

        header {
            text-align: center;
            padding: 40px 20px;
            background: linear-gradient(135deg, var(--bg-secondary) 0%, var(--bg-tertiary) 100%);
            border-radius: 16px;
            margin-bottom: 30px;
            border: 1px solid var(--border-color);
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
            background: linear-gradient(90deg, #58a6ff, #3fb950);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }

        .meta {
            color: var(--text-secondary);
            font-size: 0.9em;
        }

        .summary-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }

        .summary-card {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 12px;
            padding: 24px;
            text-align: center;
            transition: transform 0.2s, box-shadow 0.2s;
        }

        .summary-card:hover {
            transform: translateY(-2px);
            box-shadow: 0 8px 25px rgba(0,0,0,0.3);
        }

        .summary-card.total { border-left: 4px solid var(--info); }
        .summary-card.orphans { border-left: 4px solid var(--orphans); }
        .summary-card.failed { border-left: 4px solid var(--failed); }

        .summary-card h3 {
            color: var(--text-secondary);
            font-size: 0.85em;
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 10px;
        }

        .summary-card .value {
            font-size: 2.5em;
            font-weight: 700;
        }

        .summary-card.total .value { color: var(--info); }
        .summary-card.orphans .value { color: var(--orphans); }
        .summary-card.failed .value { color: var(--failed); }

        .section {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 12px;
            margin-bottom: 20px;
            overflow: hidden;
        }

        .section-header {
            padding: 20px 24px;
            cursor: pointer;
            display: flex;
            justify-content: space-between;
            align-items: center;
            background: var(--bg-tertiary);
            transition: background 0.2s;
        }

        .section-header:hover {
            background: rgba(88, 166, 255, 0.1);
        }

        .section-header h2 {
            font-size: 1.2em;
            display: flex;
            align-items: center;
            gap: 12px;
        }

        .section-status {
            width: 12px;
            height: 12px;
            border-radius: 50%;
        }

        .section-status.failed { background: var(--failed); box-shadow: 0 0 10px var(--failed); }
        .section-status.orphans { background: var(--orphans); box-shadow: 0 0 10px var(--orphans); }
        .section-status.clean { background: var(--clean); box-shadow: 0 0 10px var(--clean); }

        .section-toggle {
            font-size: 1.5em;
            color: var(--text-secondary);
            transition: transform 0.3s;
        }

        .section.collapsed .section-toggle {
            transform: rotate(-90deg);
        }

        .section-content {
            padding: 0 24px 24px;
            display: block;
        }

        .section.collapsed .section-content {
            display: none;
        }

        .section-description {
            color: var(--text-secondary);
            margin-bottom: 20px;
            font-size: 0.95em;
        }

        .orphans-table {
            width: 100%;
            border-collapse: collapse;
        }

        .orphans-table th {
            text-align: left;
            padding: 12px 16px;
            background: var(--bg-tertiary);
            color: var(--text-secondary);
            font-size: 0.85em;
            text-transform: uppercase;
            letter-spacing: 0.5px;
            border-bottom: 1px solid var(--border-color);
        }

        .orphans-table td {
            padding: 12px 16px;
            border-bottom: 1px solid var(--border-color);
            vertical-align: top;
        }

        .orphans-table tr:last-child td {
            border-bottom: none;
        }

        .orphans-table tr:hover {
            background: rgba(88, 166, 255, 0.05);
        }

        .orphans-table a {
            color: var(--info);
            text-decoration: none;
            font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', monospace;
            font-size: 0.9em;
        }

        .failures {
            margin-top: 20px;
            border: 1px solid var(--failed);
            border-radius: 8px;
            padding: 16px;
        }

        .failures h4 {
            color: var(--failed);
            margin-bottom: 8px;
        }

        .failures li {
            margin-left: 20px;
            color: var(--text-secondary);
            font-size: 0.9em;
        }

        .no-orphans {
            text-align: center;
            padding: 40px;
            color: var(--text-secondary);
        }

        .no-orphans .icon {
            font-size: 3em;
            margin-bottom: 15px;
        }

        footer {
            text-align: center;
            padding: 30px;
            color: var(--text-secondary);
            font-size: 0.85em;
        }

        footer a {
            color: var(--info);
            text-decoration: none;
        }

        @media (max-width: 768px) {
            header h1 { font-size: 1.8em; }
            .summary-grid { grid-template-columns: repeat(2, 1fr); }
            .orphans-table { font-size: 0.9em; }
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>🧹 AWS Orphaned Resources</h1>
            <p class="meta">Account: <strong>{{.AccountID}}</strong> | Generated: {{.GeneratedAt}}</p>
        </header>

        <div class="summary-grid">
            <div class="summary-card total">
                <h3>Total Orphans</h3>
                <div class="value">{{.Summary.TotalOrphans}}</div>
            </div>
            <div class="summary-card orphans">
                <h3>Security Groups</h3>
                <div class="value">{{.Summary.SecurityGroups}}</div>
            </div>
            <div class="summary-card orphans">
                <h3>Elastic IPs</h3>
                <div class="value">{{.Summary.ElasticIPs}}</div>
            </div>
            <div class="summary-card orphans">
                <h3>EBS Volumes</h3>
                <div class="value">{{.Summary.Volumes}}</div>
            </div>
            <div class="summary-card failed">
                <h3>Failed Regions</h3>
                <div class="value">{{.Summary.FailedRegions}}</div>
            </div>
        </div>

        {{range .Sections}}
        <div class="section" id="{{.ID}}">
            <div class="section-header" onclick="toggleSection('{{.ID}}')">
                <h2>
                    <span class="section-status {{.Status}}"></span>
                    {{.Title}}
                    <span style="color: var(--text-secondary); font-weight: normal; font-size: 0.8em;">
                        ({{len .Rows}} orphans)
                    </span>
                </h2>
                <span class="section-toggle">▼</span>
            </div>
            <div class="section-content">
                {{if .Description}}
                <p class="section-description">{{.Description}}</p>
                {{end}}
                {{if .Rows}}
                <table class="orphans-table">
                    <thead>
                        <tr>
                            {{range .Columns}}<th>{{.}}</th>{{end}}
                        </tr>
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
                <div class="no-orphans">
                    <div class="icon">✅</div>
                    <p>No orphans of this type</p>
                </div>
                {{end}}
                {{if .Failures}}
                <div class="failures">
                    <h4>⚠ Regions that could not be scanned</h4>
                    <ul>
                        {{range .Failures}}<li><strong>{{.Region}}</strong>: {{.Reason}}</li>{{end}}
                    </ul>
                </div>
                {{end}}
            </div>
        </div>
        {{end}}

        <footer>
            <p>Generated by <a href="https://github.com/AlexisDongMariano/aws-orphans">aws-orphans</a></p>
        </footer>
    </div>

    <script>
        function toggleSection(id) {
            const section = document.getElementById(id);
            section.classList.toggle('collapsed');
        }
    </script>
</body>
</html>`
