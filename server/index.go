package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sgopal/chipdiff"
)

// indexData feeds the index page template.
type indexData struct {
	Years          []yearInfo
	Previews       []preview
	Target         int
	Classification *chipdiff.Classification
}

type preview struct {
	Year    int
	Records []chipdiff.Record
}

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"dict": dict,
}).Parse(`<!DOCTYPE html>
<html>
<head><title>chipdiff</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #999; padding: 0.3em 0.8em; text-align: left; }
form { margin: 1em 0; }
</style>
</head>
<body>
<h1>Multi-Year Chipset Sales Comparison</h1>

<h2>Upload CSV Files</h2>
<form action="/api/upload" method="post" enctype="multipart/form-data">
  <input type="file" name="file" accept=".csv" multiple>
  <button type="submit">Upload</button>
</form>

{{if .Years}}
<h2>Data Preview</h2>
{{range .Previews}}
<h3>{{.Year}} Data</h3>
<table>
<tr><th>Sr. No</th><th>Chipset SP</th><th>Customer</th><th>PDM Name</th></tr>
{{range $i, $r := .Records}}
<tr><td>{{inc $i}}</td><td>{{$r.ID}}</td><td>{{$r.Customer}}</td><td>{{$r.PDM}}</td></tr>
{{end}}
</table>
{{end}}

<h2>Chipset Changes for {{.Target}}</h2>
{{template "set" dict "Title" "Added Chipsets" "Records" .Classification.Added}}
{{template "set" dict "Title" "Removed Chipsets" "Records" .Classification.Removed}}
{{template "set" dict "Title" "Reappeared Chipsets" "Records" .Classification.Reappeared}}
{{else}}
<p>Please upload at least one CSV file.</p>
{{end}}
</body>
</html>

{{define "set"}}
<h3>{{.Title}}</h3>
{{if .Records}}
<table>
<tr><th>Sr. No</th><th>Chipset SP</th><th>Customer</th><th>PDM Name</th></tr>
{{range $i, $r := .Records}}
<tr><td>{{inc $i}}</td><td>{{$r.ID}}</td><td>{{$r.Customer}}</td><td>{{$r.PDM}}</td></tr>
{{end}}
</table>
{{else}}
<p>None.</p>
{{end}}
{{end}}`))

// dict builds a template argument map, so the "set" sub-template can be
// called with named values.
func dict(pairs ...any) map[string]any {
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		m[key] = pairs[i+1]
	}
	return m
}

// Index renders the whole session as one HTML page: previews for every
// loaded year, classification for the selected target year (query parameter
// y, defaulting to the latest year).
// GET /
func (s *Server) Index(c *gin.Context) {
	data := indexData{}
	s.session.Snapshot(func(g *chipdiff.Registry) {
		for y := range g.Years() {
			data.Years = append(data.Years, yearInfo{Year: y, Chipsets: g.Get(y).Len()})
			p := preview{Year: y}
			for r := range g.Get(y).Records() {
				p.Records = append(p.Records, r)
			}
			data.Previews = append(data.Previews, p)
		}

		data.Target = g.Latest()
		if q := c.Query("y"); q != "" {
			if year, err := strconv.Atoi(q); err == nil {
				data.Target = year
			}
		}
		data.Classification = chipdiff.Classify(g, data.Target)
	})

	// Render into a buffer first, so a template error can still turn into
	// a 500 instead of a truncated page.
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
