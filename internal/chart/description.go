// Package chart derives chart descriptions from the dataset and draws them.
package chart

import (
	"fmt"

	"StockDashboard/internal/model"
)

// Kind is the chart type a description is bound to.
type Kind int

const (
	KindNone Kind = iota
	KindLine
	KindBar
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	}
	return "none"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range []Kind{KindNone, KindLine, KindBar} {
		if string(text) == c.String() {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown chart kind %q", text)
}

// Point is one plotted sample.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Margin around the plot area, in pixels.
type Margin struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Left   int `json:"left"`
	Bottom int `json:"bottom"`
}

// Gradient is the vertical fill under a line, from the line down to the axis.
type Gradient struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Marker is drawn at every sample of a line chart.
type Marker struct {
	Radius      float64 `json:"radius"`
	StrokeWidth float64 `json:"stroke_width"`
	Stroke      string  `json:"stroke"`
	Fill        string  `json:"fill"`
}

// Grid describes the cartesian grid behind the series.
type Grid struct {
	Dash   string `json:"dash"`
	Stroke string `json:"stroke"`
}

// Description is everything the charting toolkit needs to draw one chart.
type Description struct {
	Kind   Kind            `json:"kind"`
	Series model.SeriesKey `json:"series"`
	Title  string          `json:"title"`
	XKey   string          `json:"x_key"`
	YKey   string          `json:"y_key"`
	Points []Point         `json:"points"`

	Height    int    `json:"height"`
	Margin    Margin `json:"margin"`
	Grid      Grid   `json:"grid"`
	TickColor string `json:"tick_color"`

	// Line charts.
	Stroke        string    `json:"stroke,omitempty"`
	StrokeWidth   float64   `json:"stroke_width,omitempty"`
	Interpolation string    `json:"interpolation,omitempty"`
	Gradient      *Gradient `json:"gradient,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`

	// Bar charts.
	Fill        string  `json:"fill,omitempty"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
}

// Empty reports whether there is nothing to plot.
func (d Description) Empty() bool {
	return d.Kind == KindNone || len(d.Points) == 0
}
