package backend

import (
	"fmt"
	"html/template"
	"io"
)

// PlotlyURL is the engine bundle referenced by rendered pages.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Target}}</title>
<script src="{{.Engine}}"></script>
<style>html,body,body>div{margin:0;width:100%;height:100%}</style>
</head>
<body>
<div id="{{.Target}}"></div>
<script>
const spec = {{.Spec}};
Plotly.newPlot({{.Target}}, spec.data, spec.layout, spec.config);
</script>
</body>
</html>
`))

// WritePage writes a standalone HTML page that mounts the encoded spec on a
// div named after target.
func WritePage(w io.Writer, target string, encoded []byte) error {
	err := pageTemplate.Execute(w, struct {
		Target string
		Engine string
		Spec   template.JS
	}{
		Target: target,
		Engine: PlotlyURL,
		Spec:   template.JS(encoded),
	})
	if err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
