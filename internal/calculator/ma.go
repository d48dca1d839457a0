package calculator

import (
	"errors"

	"StockDashboard/internal/model"
)

// CalculateSMA computes the simple moving average of the given values over the specified period.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// Mean averages all values.
func Mean(values []float64) (float64, error) {
	return CalculateSMA(values, len(values))
}

// ExtractCloses returns the close of every record in order.
func ExtractCloses(records []model.DailyRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Close
	}
	return out
}

// ExtractVolumes returns the volume of every record as float64.
func ExtractVolumes(records []model.DailyRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.Volume)
	}
	return out
}

// ExtractReturns returns the daily return of every record that has one.
func ExtractReturns(records []model.DailyRecord) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		if r.NoReturn {
			continue
		}
		out = append(out, r.DailyReturn)
	}
	return out
}
