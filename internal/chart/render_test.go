package chart

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"StockDashboard/internal/collector"
	"StockDashboard/internal/model"
)

func TestRender_KindAndColor(t *testing.T) {
	tests := []struct {
		key   model.SeriesKey
		kind  Kind
		color string
	}{
		{key: model.Close, kind: KindLine, color: ColorClose},
		{key: model.Volume, kind: KindBar, color: ColorVolume},
		{key: model.DailyReturn, kind: KindLine, color: ColorDailyReturn},
	}
	for _, test := range tests {
		d := Render(collector.SampleRecords(), test.key)
		if d.Kind != test.kind {
			t.Errorf("Render(%v): kind = %v, want %v", test.key, d.Kind, test.kind)
		}
		got := d.Stroke
		if d.Kind == KindBar {
			got = d.Fill
		}
		if got != test.color {
			t.Errorf("Render(%v): color = %s, want %s", test.key, got, test.color)
		}
		if d.YKey != test.key.String() || d.XKey != "Date" {
			t.Errorf("Render(%v): axes = %s/%s", test.key, d.XKey, d.YKey)
		}
	}
}

func TestRender_LineDecorations(t *testing.T) {
	d := Render(collector.SampleRecords(), model.DailyReturn)
	if d.Gradient == nil || d.Gradient.From != "rgba(244, 63, 94, 0.2)" || d.Gradient.To != "rgba(244, 63, 94, 0)" {
		t.Errorf("unexpected gradient %+v", d.Gradient)
	}
	want := &Marker{Radius: 4, StrokeWidth: 2, Stroke: ColorDailyReturn, Fill: "white"}
	if diff := pretty.Compare(want, d.Marker); diff != "" {
		t.Errorf("marker: -want/+got:\n%s", diff)
	}
	if d.StrokeWidth != 3 {
		t.Errorf("expected stroke width 3, got %v", d.StrokeWidth)
	}
}

func TestRender_BarStyle(t *testing.T) {
	d := Render(collector.SampleRecords(), model.Volume)
	if d.FillOpacity != 0.7 {
		t.Errorf("expected fill opacity 0.7, got %v", d.FillOpacity)
	}
	if d.Gradient != nil || d.Marker != nil {
		t.Error("bar chart should carry no gradient or markers")
	}
}

func TestRender_ClosePoints(t *testing.T) {
	d := Render(collector.SampleRecords(), model.Close)
	want := []Point{
		{Date: "2024-01-01", Value: 100},
		{Date: "2024-01-02", Value: 102},
		{Date: "2024-01-03", Value: 101},
		{Date: "2024-01-04", Value: 103},
		{Date: "2024-01-05", Value: 105},
	}
	if diff := pretty.Compare(want, d.Points); diff != "" {
		t.Errorf("points: -want/+got:\n%s", diff)
	}
}

func TestRender_Empty(t *testing.T) {
	for _, key := range model.SeriesKeys {
		d := Render(nil, key)
		if d.Kind == KindNone {
			t.Errorf("Render(nil, %v): expected a chart kind", key)
		}
		if len(d.Points) != 0 {
			t.Errorf("Render(nil, %v): expected zero points, got %d", key, len(d.Points))
		}
		if !d.Empty() {
			t.Errorf("Render(nil, %v): expected Empty()", key)
		}
	}
}

func TestRender_UnknownKey(t *testing.T) {
	d := Render(collector.SampleRecords(), model.SeriesKey(7))
	if d.Kind != KindNone || len(d.Points) != 0 {
		t.Errorf("expected no chart, got %+v", d)
	}
}

func TestRender_SwitchingAndReselect(t *testing.T) {
	recs := collector.SampleRecords()
	first := Render(recs, model.Close)
	again := Render(recs, model.Close)
	if diff := pretty.Compare(first, again); diff != "" {
		t.Errorf("re-rendering the same key changed the chart:\n%s", diff)
	}
	vol := Render(recs, model.Volume)
	if vol.Kind == first.Kind || vol.Fill == first.Stroke {
		t.Errorf("switching to Volume did not change kind/color: %v %s", vol.Kind, vol.Fill)
	}
}
