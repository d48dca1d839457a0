package chart

import "StockDashboard/internal/model"

// Series colours.
const (
	ColorClose       = "#3b82f6"
	ColorVolume      = "#10b981"
	ColorDailyReturn = "#f43f5e"
)

const (
	chartHeight = 300
	gridStroke  = "#e0e0e0"
	tickColor   = "#6b7280"
)

type seriesStyle struct {
	title        string
	color        string
	gradientID   string
	gradientFrom string
	gradientTo   string
}

var (
	closeStyle = seriesStyle{
		title:        "Stock Close Price Over Time",
		color:        ColorClose,
		gradientID:   "closeGradient",
		gradientFrom: "rgba(59, 130, 246, 0.2)",
		gradientTo:   "rgba(59, 130, 246, 0)",
	}
	volumeStyle = seriesStyle{
		title:        "Daily Trading Volume",
		color:        ColorVolume,
		gradientFrom: "rgba(16, 185, 129, 0.2)",
		gradientTo:   "rgba(16, 185, 129, 0)",
	}
	returnStyle = seriesStyle{
		title:        "Daily Returns",
		color:        ColorDailyReturn,
		gradientID:   "returnGradient",
		gradientFrom: "rgba(244, 63, 94, 0.2)",
		gradientTo:   "rgba(244, 63, 94, 0)",
	}
)

// Render derives the chart for key from records. It never fails: an empty
// dataset gives a description with no points, and a key outside the
// enumeration gives a KindNone description.
func Render(records []model.DailyRecord, key model.SeriesKey) Description {
	switch key {
	case model.Close:
		return lineChart(records, key, closeStyle)
	case model.Volume:
		return barChart(records, key, volumeStyle)
	case model.DailyReturn:
		return lineChart(records, key, returnStyle)
	default:
		return Description{Kind: KindNone, Series: key}
	}
}

func base(records []model.DailyRecord, key model.SeriesKey, title string) Description {
	return Description{
		Series:    key,
		Title:     title,
		XKey:      "Date",
		YKey:      key.String(),
		Points:    points(records, key),
		Height:    chartHeight,
		Margin:    Margin{Top: 20, Right: 30, Left: 20, Bottom: 5},
		Grid:      Grid{Dash: "3 3", Stroke: gridStroke},
		TickColor: tickColor,
	}
}

func lineChart(records []model.DailyRecord, key model.SeriesKey, st seriesStyle) Description {
	d := base(records, key, st.title)
	d.Kind = KindLine
	d.Stroke = st.color
	d.StrokeWidth = 3
	d.Interpolation = "monotone"
	d.Gradient = &Gradient{ID: st.gradientID, From: st.gradientFrom, To: st.gradientTo}
	d.Marker = &Marker{Radius: 4, StrokeWidth: 2, Stroke: st.color, Fill: "white"}
	return d
}

func barChart(records []model.DailyRecord, key model.SeriesKey, st seriesStyle) Description {
	d := base(records, key, st.title)
	d.Kind = KindBar
	d.Fill = st.color
	d.FillOpacity = 0.7
	return d
}

func points(records []model.DailyRecord, key model.SeriesKey) []Point {
	pts := make([]Point, 0, len(records))
	for _, r := range records {
		v, _ := r.Value(key)
		pts = append(pts, Point{Date: r.Date, Value: v})
	}
	return pts
}
