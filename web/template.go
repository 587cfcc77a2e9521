package web

import "html/template"

// pageTemplate renders the index form, a gist view, or an error page.
// Highlighted lines are trusted markup: every line is escaped before
// token spans are inserted.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}} · {{end}}gistview</title>
<style>
body { margin: 0; background: #111827; color: #e5e7eb; font-family: system-ui, sans-serif; }
main { max-width: 960px; margin: 0 auto; padding: 24px; }
form { display: flex; gap: 8px; margin-bottom: 24px; }
input[type=text] { flex: 1; padding: 8px; background: #1f2937; color: inherit; border: 1px solid #374151; border-radius: 4px; }
button { padding: 8px 16px; background: #2563eb; color: #fff; border: 0; border-radius: 4px; }
.empty-state, .error { text-align: center; padding: 48px; }
.error { color: #f87171; }
.file-card { border: 1px solid #374151; border-radius: 6px; margin-bottom: 24px; overflow: hidden; }
.file-header { display: flex; justify-content: space-between; align-items: center; padding: 8px 12px; background: #374151; }
.filename { font-weight: 600; }
.language-badge { margin-left: 8px; padding: 2px 8px; border-radius: 10px; background: #1e3a5f; color: #93c5fd; font-size: 12px; }
.code-container { font-family: ui-monospace, monospace; font-size: 13px; overflow-x: auto; }
.code-line { display: flex; white-space: pre; }
.line-number { width: 48px; padding-right: 12px; text-align: right; color: #6b7280; user-select: none; flex-shrink: 0; }
.import-line { background: #151d2e; }
.import-block-collapsed, .import-block-header { display: block; padding: 2px 12px 2px 60px; color: #93c5fd; background: #172036; text-decoration: none; }
.import-block-header { background: #1a2540; }
.token-keyword { color: #60a5fa; }
.token-string { color: #f87171; }
.token-number { color: #34d399; }
.token-comment { color: #6b7280; font-style: italic; }
.token-function { color: #fbbf24; }
</style>
</head>
<body>
<main>
{{- if not .Static}}
<form method="get" action="/">
<input type="text" name="url" placeholder="https://gist.github.com/user/id" value="{{.URL}}">
<button type="submit">Load</button>
</form>
{{- end}}
{{- if .Error}}
<div class="error">{{.Error}}</div>
{{- else if not .Files}}
<div class="empty-state">
<p>No gist loaded</p>
<p>Provide a valid GitHub Gist URL</p>
</div>
{{- else}}
<div class="files-container">
{{- range .Files}}
<div class="file-card">
<div class="file-header">
<div class="file-info"><span class="filename">{{.Filename}}</span><span class="language-badge">{{.Language}}</span></div>
</div>
<div class="code-container">
{{- range .Rows}}
{{- if eq .Kind "collapsed"}}
<a class="import-block-collapsed" href="{{.Toggle}}">▸ {{.Text}}</a>
{{- else if eq .Kind "header"}}
{{- if .Toggle}}
<a class="import-block-header" href="{{.Toggle}}">▾ {{.Text}}</a>
{{- else}}
<div class="import-block-header">▾ {{.Text}}</div>
{{- end}}
{{- else}}
<div class="code-line{{if eq .Kind "import"}} import-line{{end}}"><span class="line-number">{{.Number}}</span><span class="line-content">{{.HTML}}</span></div>
{{- end}}
{{- end}}
</div>
</div>
{{- end}}
</div>
{{- end}}
</main>
</body>
</html>
`))
