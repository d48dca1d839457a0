package calculator

import (
	"errors"
	"math"
)

// PercentChange returns the period-over-period change of values in percent.
// The first element has no predecessor and is 0.
func PercentChange(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		out[i] = (values[i]/values[i-1] - 1) * 100
	}
	return out
}

// TotalReturn is the percent change from the first to the last value.
func TotalReturn(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	if values[0] == 0 {
		return 0, errors.New("first value is zero")
	}
	return (values[len(values)-1]/values[0] - 1) * 100, nil
}

// SampleStdDev is the standard deviation with n-1 in the denominator.
func SampleStdDev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, errors.New("need at least two values for standard deviation")
	}
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1)), nil
}

// RollingStdDev computes the sample standard deviation over each trailing window.
// Positions without a full window are NaN.
func RollingStdDev(values []float64, window int) ([]float64, error) {
	if window < 2 {
		return nil, errors.New("window must be at least 2")
	}
	out := make([]float64, len(values))
	for i := range values {
		if i+1 < window {
			out[i] = math.NaN()
			continue
		}
		sd, err := SampleStdDev(values[i+1-window : i+1])
		if err != nil {
			return nil, err
		}
		out[i] = sd
	}
	return out, nil
}
