// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"encoding/json"
	"html/template"
	"io"
)

// PlotlyURL is the plotly.js bundle loaded by chart pages.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// HTMLOptions controls WriteHTML.
type HTMLOptions struct {
	// Reload, if non-empty, is a URL the page polls once a second.
	// When the response body changes, the page reloads itself.
	Reload string
}

// WriteHTML writes f to w as a self-contained HTML page that draws it
// with plotly.js.
func WriteHTML(w io.Writer, f *Figure, opts HTMLOptions) error {
	js, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return pageTmpl.Execute(w, struct {
		Title     string
		PlotlyURL string
		Figure    template.JS
		Reload    string
	}{f.Layout.Title.Text, PlotlyURL, template.JS(js), opts.Reload})
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <script type="text/javascript" src="{{.PlotlyURL}}"></script>
    <style>
html, body {
  height: 100%;
  margin: 0;
  font-family: sans-serif;
}
#chart {
  width: 100%;
  height: 100%;
}
    </style>
  </head>
  <body>
    <div id="chart"></div>
    <script type="text/javascript">
     var figure = {{.Figure}};
     Plotly.newPlot("chart", figure.data, figure.layout, {responsive: true});
     {{- with .Reload}}

     (function() {
         var last = null;
         setInterval(function() {
             fetch({{.}}, {cache: "no-store"}).then(function(r) {
                 return r.text();
             }).then(function(v) {
                 if (last !== null && v !== last)
                     location.reload();
                 last = v;
             }).catch(function() {});
         }, 1000);
     })();
     {{- end}}
    </script>
  </body>
</html>
`
