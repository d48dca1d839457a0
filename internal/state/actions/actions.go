// Package actions details boutique.Actions that are used by modifiers to modify the store.
package actions

import (
	"github.com/johnsiilver/boutique"

	"StockDashboard/internal/model"
	"StockDashboard/internal/state/data"
)

const (
	// ActSeed populates the dataset and metrics at mount.
	ActSeed = iota
	// ActSelect changes the selected series.
	ActSelect
	// ActLoadStarted marks a fetch as in flight.
	ActLoadStarted
	// ActLoadSucceeded replaces the dataset with a fetched one.
	ActLoadSucceeded
	// ActLoadFailed records a failed fetch.
	ActLoadFailed
)

// Seed mounts the dashboard with records and metrics.
func Seed(records []model.DailyRecord, metrics model.MetricsSnapshot) boutique.Action {
	return boutique.Action{Type: ActSeed, Update: data.Dataset{Records: records, Metrics: metrics}}
}

// Select changes the chart's series.
func Select(key model.SeriesKey) boutique.Action {
	return boutique.Action{Type: ActSelect, Update: key}
}

// LoadStarted announces fetch generation gen.
func LoadStarted(gen uint64) boutique.Action {
	return boutique.Action{Type: ActLoadStarted, Update: gen}
}

// LoadSucceeded delivers the result of fetch generation gen.
func LoadSucceeded(gen uint64, records []model.DailyRecord, metrics model.MetricsSnapshot) boutique.Action {
	return boutique.Action{Type: ActLoadSucceeded, Update: data.Dataset{Generation: gen, Records: records, Metrics: metrics}}
}

// LoadFailed reports that fetch generation gen failed with err.
func LoadFailed(gen uint64, err error) boutique.Action {
	return boutique.Action{Type: ActLoadFailed, Update: data.Failure{Generation: gen, Err: err.Error()}}
}
