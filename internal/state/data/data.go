// Package data holds the State object that is stored in the dashboard's boutique.Store.
package data

import "StockDashboard/internal/model"

// State holds the data stored in boutique.Store.
type State struct {
	// Records is the dataset, in date order.
	Records []model.DailyRecord
	// Metrics is the summary statistics panel content.
	Metrics model.MetricsSnapshot
	// Selected is the series driving the chart.
	Selected model.SeriesKey
	// Status is the dataset's retrieval lifecycle.
	Status model.LoadStatus
	// LoadError is the last load failure, empty unless Status is StatusLoadFailed.
	LoadError string
	// Generation is the collector generation of the dataset currently held.
	Generation uint64
	// Seeded is set once the dashboard has been mounted.
	Seeded bool
}

// Dataset is the payload that replaces Records and Metrics.
type Dataset struct {
	Generation uint64
	Records    []model.DailyRecord
	Metrics    model.MetricsSnapshot
}

// Failure reports a load that did not complete.
type Failure struct {
	Generation uint64
	Err        string
}
