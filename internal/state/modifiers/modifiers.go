// Package modifiers holds all the boutique.Modifiers for the dashboard store.
package modifiers

import (
	"github.com/johnsiilver/boutique"

	"StockDashboard/internal/model"
	"StockDashboard/internal/state/actions"
	"StockDashboard/internal/state/data"
)

// All is a boutique.Modifiers made up of all Modifier(s) in this file.
var All = boutique.NewModifiers(Seed, Select, Load)

// Seed handles an Action of type ActSeed. Only the first seed is applied.
func Seed(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	switch action.Type {
	case actions.ActSeed:
		if s.Seeded {
			break
		}
		u := action.Update.(data.Dataset)
		s.Records = model.CloneRecords(u.Records)
		s.Metrics = u.Metrics
		s.Status = model.StatusLoaded
		s.Seeded = true
	}
	return s
}

// Select handles an Action of type ActSelect.
func Select(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	switch action.Type {
	case actions.ActSelect:
		key := action.Update.(model.SeriesKey)
		if key.Valid() {
			s.Selected = key
		}
	}
	return s
}

// Load handles the ActLoad* Actions. Results older than the held generation are dropped.
func Load(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	switch action.Type {
	case actions.ActLoadStarted:
		if gen := action.Update.(uint64); gen > s.Generation {
			s.Status = model.StatusLoading
			s.LoadError = ""
		}
	case actions.ActLoadSucceeded:
		u := action.Update.(data.Dataset)
		if u.Generation <= s.Generation {
			break
		}
		s.Records = model.CloneRecords(u.Records)
		s.Metrics = u.Metrics
		s.Generation = u.Generation
		s.Status = model.StatusLoaded
		s.LoadError = ""
		s.Seeded = true
	case actions.ActLoadFailed:
		u := action.Update.(data.Failure)
		if u.Generation <= s.Generation {
			break
		}
		s.Status = model.StatusLoadFailed
		s.LoadError = u.Err
	}
	return s
}
