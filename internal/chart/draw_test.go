package chart

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"StockDashboard/internal/collector"
	"StockDashboard/internal/model"
)

func TestDraw_PNG(t *testing.T) {
	for _, key := range model.SeriesKeys {
		var buf bytes.Buffer
		if err := Draw(&buf, Render(collector.SampleRecords(), key), FormatPNG, 640); err != nil {
			t.Fatalf("Draw(%v): %v", key, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("Draw(%v): decode: %v", key, err)
		}
		if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 300 {
			t.Errorf("Draw(%v): unexpected size %v", key, b)
		}
	}
}

func TestDraw_SVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Draw(&buf, Render(collector.SampleRecords(), model.Volume), FormatSVG, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("expected svg output")
	}
}

func TestDraw_EmptyIsBlank(t *testing.T) {
	var buf bytes.Buffer
	if err := Draw(&buf, Render(nil, model.Close), FormatPNG, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 300 {
		t.Errorf("unexpected size %v", b)
	}
}

func TestDraw_SinglePoint(t *testing.T) {
	recs := []model.DailyRecord{{Date: "2024-01-01", Close: 100, Volume: 5}}
	for _, key := range model.SeriesKeys {
		for _, f := range []Format{FormatPNG, FormatSVG} {
			var buf bytes.Buffer
			if err := Draw(&buf, Render(recs, key), f, 0); err != nil {
				t.Errorf("Draw(%v, %v) with one record: %v", key, f.ContentType(), err)
			}
			if buf.Len() == 0 {
				t.Errorf("Draw(%v, %v) wrote nothing", key, f.ContentType())
			}
		}
	}
}

func TestDateTicks(t *testing.T) {
	ticks := dateTicks(Render(collector.SampleRecords(), model.Close).Points)
	if len(ticks) != 7 {
		t.Fatalf("got %d ticks, want 7", len(ticks))
	}
	first, last := ticks[0], ticks[len(ticks)-1]
	if first.Value != -0.5 || first.Label != "" || last.Value != 4.5 || last.Label != "" {
		t.Errorf("edge ticks = %+v, %+v", first, last)
	}
	if ticks[1].Value != 0 || ticks[1].Label != "2024-01-01" || ticks[5].Label != "2024-01-05" {
		t.Errorf("date ticks = %+v", ticks[1:6])
	}

	one := dateTicks([]Point{{Date: "2024-01-01", Value: 1}})
	if one[0].Value >= one[len(one)-1].Value {
		t.Errorf("single point ticks have no span: %+v", one)
	}
}

func TestDraw_NonFinite(t *testing.T) {
	d := Render(collector.SampleRecords(), model.Close)
	d.Points[2].Value = math.Inf(1)
	var buf bytes.Buffer
	if err := Draw(&buf, d, FormatPNG, 0); err == nil {
		t.Error("expected error for an infinite value")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("SVG"); err != nil || f != FormatSVG {
		t.Errorf("ParseFormat(SVG) = %v, %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestAlpha(t *testing.T) {
	if got := alpha("rgba(59, 130, 246, 0.2)"); got != 51 {
		t.Errorf("alpha = %d, want 51", got)
	}
	if got := alpha("#fff"); got != 255 {
		t.Errorf("alpha without rgba = %d, want 255", got)
	}
}
