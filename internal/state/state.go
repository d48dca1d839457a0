// Package state holds the dashboard's store: the dataset, the metrics and the
// selected series.
package state

import (
	"fmt"
	"sync"

	"github.com/johnsiilver/boutique"

	"StockDashboard/internal/chart"
	"StockDashboard/internal/model"
	"StockDashboard/internal/panel"
	"StockDashboard/internal/state/actions"
	"StockDashboard/internal/state/data"
	"StockDashboard/internal/state/modifiers"
)

// Store field names for Subscribe.
const (
	FieldRecords  = "Records"
	FieldMetrics  = "Metrics"
	FieldSelected = "Selected"
	FieldStatus   = "Status"
)

// Dashboard is one mounted dashboard instance.
type Dashboard struct {
	store *boutique.Store
	mount sync.Once
}

// New creates an unmounted dashboard with Close selected.
func New() (*Dashboard, error) {
	d := data.State{Selected: model.Close, Status: model.StatusIdle}
	store, err := boutique.New(d, modifiers.All, nil)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return &Dashboard{store: store}, nil
}

// Mount seeds the dataset and metrics. Only the first call has any effect.
func (d *Dashboard) Mount(records []model.DailyRecord, metrics model.MetricsSnapshot) error {
	var err error
	d.mount.Do(func() {
		err = d.store.Perform(actions.Seed(records, metrics))
	})
	return err
}

// Select changes the chart's series.
func (d *Dashboard) Select(key model.SeriesKey) error {
	if !key.Valid() {
		return fmt.Errorf("select: invalid series %v", key)
	}
	return d.store.Perform(actions.Select(key))
}

// BeginLoad marks fetch generation gen as in flight.
func (d *Dashboard) BeginLoad(gen uint64) error {
	return d.store.Perform(actions.LoadStarted(gen))
}

// CompleteLoad applies a fetched dataset unless a newer one is already held.
func (d *Dashboard) CompleteLoad(gen uint64, records []model.DailyRecord, metrics model.MetricsSnapshot) error {
	return d.store.Perform(actions.LoadSucceeded(gen, records, metrics))
}

// FailLoad records a failed fetch; the held dataset is kept.
func (d *Dashboard) FailLoad(gen uint64, err error) error {
	return d.store.Perform(actions.LoadFailed(gen, err))
}

// Current returns the stored state.
func (d *Dashboard) Current() data.State {
	return d.store.State().Data.(data.State)
}

// Version is the store version; it changes only when a field does.
func (d *Dashboard) Version() uint64 {
	return d.store.State().Version
}

// Selected returns the selected series.
func (d *Dashboard) Selected() model.SeriesKey {
	return d.Current().Selected
}

// Chart derives the chart for the current dataset and selection.
func (d *Dashboard) Chart() chart.Description {
	s := d.Current()
	return chart.Render(s.Records, s.Selected)
}

// Panel formats the current metrics.
func (d *Dashboard) Panel() []panel.Row {
	return panel.Format(d.Current().Metrics)
}

// Subscribe signals on changes to field, or to any field with boutique.Any.
func (d *Dashboard) Subscribe(field string) (chan boutique.Signal, boutique.CancelFunc, error) {
	return d.store.Subscribe(field)
}
