package web

import (
	"html/template"

	"StockDashboard/internal/panel"
	"StockDashboard/internal/selector"
)

type pageOption struct {
	selector.Option
	Selected bool
}

type pageData struct {
	Symbol    string
	Title     string
	Options   []pageOption
	Version   uint64
	Status    string
	LoadError string
	Rows      []panel.Row
}

func (s *Server) page() pageData {
	cur := s.Dashboard.Current()
	opts := selector.Options()
	po := make([]pageOption, len(opts))
	for i, o := range opts {
		po[i] = pageOption{Option: o, Selected: o.Value == cur.Selected.String()}
	}
	return pageData{
		Symbol:    s.Symbol,
		Title:     s.Dashboard.Chart().Title,
		Options:   po,
		Version:   s.Dashboard.Version(),
		Status:    cur.Status.String(),
		LoadError: cur.LoadError,
		Rows:      panel.Format(cur.Metrics),
	}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Stock Market Analysis Dashboard</title>
<style>
body { font-family: sans-serif; background: #f3f4f6; margin: 0; padding: 24px; }
.card { background: #fff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); padding: 16px; margin-bottom: 24px; }
h1 { font-size: 1.5rem; color: #1f2937; }
h2 { font-size: 1.125rem; color: #374151; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 12px; }
.metric { background: #f9fafb; border-radius: 6px; padding: 12px; }
.metric .label { font-size: 0.75rem; color: #6b7280; }
.metric .value { font-size: 1.125rem; font-weight: 600; color: #111827; }
.error { color: #b91c1c; }
</style>
</head>
<body>
<h1>Stock Market Analysis Dashboard</h1>
<div class="card">
  <form method="post" action="/select">
    <label for="series">Series</label>
    <select id="series" name="series" onchange="this.form.submit()">
    {{- range .Options}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{- end}}
    </select>
    <noscript><button type="submit">Show</button></noscript>
  </form>
  <p>{{.Symbol}} | {{.Status}}{{if .LoadError}} <span class="error">{{.LoadError}}</span>{{end}}</p>
  <img id="chart" alt="{{.Title}}" src="/chart.png?v={{.Version}}" width="800" height="300">
</div>
<div class="card">
  <h2>Key Analysis Metrics</h2>
  <div class="grid">
  {{- range .Rows}}
    <div class="metric"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
  {{- end}}
  </div>
</div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var img = document.getElementById("chart");
  var sel = document.getElementById("series");
  sel.onchange = function () { ws.send(JSON.stringify({series: sel.value})); };
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type !== "chart") { return; }
    sel.value = msg.chart.series;
    img.alt = msg.chart.title;
    img.src = "/chart.png?v=" + msg.version;
  };
})();
</script>
</body>
</html>
`))
