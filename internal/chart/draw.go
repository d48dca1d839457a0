package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an output encoding for Draw.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

// ParseFormat accepts "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png", "":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return 0, fmt.Errorf("unsupported chart format %q", s)
}

// ContentType is the MIME type of the encoding.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// DefaultWidth is used when Draw is given a non-positive width.
const DefaultWidth = 800

// Draw renders d through go-chart. A description with nothing to plot draws a blank canvas.
func Draw(w io.Writer, d Description, f Format, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	height := d.Height
	if height <= 0 {
		height = chartHeight
	}
	if d.Empty() {
		return blank(w, f, width, height)
	}
	for _, p := range d.Points {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return fmt.Errorf("draw %q: non-finite value %v at %s", d.Title, p.Value, p.Date)
		}
	}

	provider := gochart.PNG
	if f == FormatSVG {
		provider = gochart.SVG
	}

	switch d.Kind {
	case KindLine:
		if err := lineGraph(d, width, height).Render(provider, w); err != nil {
			return fmt.Errorf("render line chart: %w", err)
		}
	case KindBar:
		if err := barGraph(d, width, height).Render(provider, w); err != nil {
			return fmt.Errorf("render bar chart: %w", err)
		}
	}
	return nil
}

func lineGraph(d Description, width, height int) gochart.Chart {
	xs := make([]float64, len(d.Points))
	ys := make([]float64, len(d.Points))
	ticks := dateTicks(d.Points)
	for i, p := range d.Points {
		xs[i] = float64(i)
		ys[i] = p.Value
	}

	stroke := hexColor(d.Stroke)
	line := gochart.ContinuousSeries{
		Name:    d.YKey,
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeColor: stroke,
			StrokeWidth: d.StrokeWidth,
		},
	}
	if d.Gradient != nil {
		line.Style.FillColor = stroke.WithAlpha(alpha(d.Gradient.From))
	}
	series := []gochart.Series{line}

	if m := d.Marker; m != nil {
		// Outer dot in the stroke colour, inner dot in the fill colour: a ring.
		series = append(series,
			gochart.ContinuousSeries{
				XValues: xs, YValues: ys,
				Style: gochart.Style{StrokeWidth: gochart.Disabled, StrokeColor: drawing.ColorTransparent, DotColor: hexColor(m.Stroke), DotWidth: m.Radius},
			},
			gochart.ContinuousSeries{
				XValues: xs, YValues: ys,
				Style: gochart.Style{StrokeWidth: gochart.Disabled, StrokeColor: drawing.ColorTransparent, DotColor: namedColor(m.Fill), DotWidth: math.Max(m.Radius-m.StrokeWidth, 1)},
			},
		)
	}

	lo, hi := valueRange(ys, false)
	return gochart.Chart{
		Title:      d.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: padding(d.Margin)},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: ticks[0].Value, Max: ticks[len(ticks)-1].Value},
			Ticks: ticks,
			Style: gochart.Style{FontColor: hexColor(d.TickColor)},
		},
		YAxis: gochart.YAxis{
			Range:          &gochart.ContinuousRange{Min: lo, Max: hi},
			Style:          gochart.Style{FontColor: hexColor(d.TickColor)},
			GridMajorStyle: gridStyle(d.Grid),
		},
		Series: series,
	}
}

func barGraph(d Description, width, height int) gochart.BarChart {
	fill := hexColor(d.Fill).WithAlpha(uint8(math.Round(d.FillOpacity * 255)))
	bars := make([]gochart.Value, len(d.Points))
	ys := make([]float64, len(d.Points))
	for i, p := range d.Points {
		ys[i] = p.Value
		bars[i] = gochart.Value{
			Value: p.Value,
			Label: p.Date,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		}
	}

	plotWidth := width - d.Margin.Left - d.Margin.Right
	barWidth := int(float64(plotWidth) / float64(len(bars)) * 0.6)
	if barWidth < 4 {
		barWidth = 4
	}

	lo, hi := valueRange(ys, true)
	return gochart.BarChart{
		Title:        d.Title,
		Width:        width,
		Height:       height,
		BarWidth:     barWidth,
		UseBaseValue: true,
		BaseValue:    0,
		Background:   gochart.Style{Padding: padding(d.Margin)},
		XAxis:        gochart.Style{FontColor: hexColor(d.TickColor)},
		YAxis: gochart.YAxis{
			Range:          &gochart.ContinuousRange{Min: lo, Max: hi},
			Style:          gochart.Style{FontColor: hexColor(d.TickColor)},
			GridMajorStyle: gridStyle(d.Grid),
		},
		Bars: bars,
	}
}

// dateTicks labels every sample with its date. go-chart takes the x range from
// explicit ticks, so unlabelled ticks half a slot outside the first and last
// sample keep the edge markers off the plot border and give a single sample a
// non-zero span.
func dateTicks(points []Point) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(points)+2)
	ticks = append(ticks, gochart.Tick{Value: -0.5})
	for i, p := range points {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: p.Date})
	}
	return append(ticks, gochart.Tick{Value: float64(len(points)) - 0.5})
}

// valueRange pads the data range so flat series still get a non-zero delta.
func valueRange(ys []float64, fromZero bool) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	if fromZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.05, 1)
	}
	if fromZero && lo == 0 {
		return 0, hi + pad
	}
	return lo - pad, hi + pad
}

func padding(m Margin) gochart.Box {
	return gochart.Box{Top: m.Top, Right: m.Right, Bottom: m.Bottom + 20, Left: m.Left}
}

func gridStyle(g Grid) gochart.Style {
	st := gochart.Style{StrokeColor: hexColor(g.Stroke), StrokeWidth: 1}
	for _, f := range strings.Fields(g.Dash) {
		var v float64
		if _, err := fmt.Sscanf(f, "%g", &v); err == nil {
			st.StrokeDashArray = append(st.StrokeDashArray, v)
		}
	}
	return st
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

func namedColor(s string) drawing.Color {
	if strings.EqualFold(s, "white") {
		return drawing.ColorWhite
	}
	return hexColor(s)
}

// alpha extracts the alpha channel of an "rgba(r, g, b, a)" string.
func alpha(rgba string) uint8 {
	i := strings.LastIndex(rgba, ",")
	if i < 0 {
		return 255
	}
	var a float64
	if _, err := fmt.Sscanf(strings.TrimSpace(strings.TrimSuffix(rgba[i+1:], ")")), "%g", &a); err != nil {
		return 255
	}
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

func blank(w io.Writer, f Format, width, height int) error {
	if f == FormatSVG {
		_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="100%%" height="100%%" fill="white"/></svg>`, width, height)
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return png.Encode(w, img)
}
