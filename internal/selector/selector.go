// Package selector offers the series options and forwards a choice to the selection state.
package selector

import (
	"fmt"

	"StockDashboard/internal/model"
)

// Option is one entry of the single-choice control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options lists the selectable series in display order.
func Options() []Option {
	opts := make([]Option, len(model.SeriesKeys))
	for i, k := range model.SeriesKeys {
		opts[i] = Option{Value: k.String(), Label: k.Label()}
	}
	return opts
}

// Setter is the selection mutator the selector drives.
type Setter interface {
	Select(model.SeriesKey) error
}

// Selector binds the control to a Setter.
type Selector struct {
	target Setter
}

// New binds a selector to target.
func New(target Setter) *Selector {
	return &Selector{target: target}
}

// Change handles a value-changed event from the control.
func (s *Selector) Change(value string) (model.SeriesKey, error) {
	key, err := model.ParseSeriesKey(value)
	if err != nil {
		return 0, fmt.Errorf("change selection: %w", err)
	}
	if err := s.target.Select(key); err != nil {
		return 0, fmt.Errorf("change selection: %w", err)
	}
	return key, nil
}
