// Package analysis produces the dashboard's summary statistics.
package analysis

import (
	"fmt"
	"math"

	"StockDashboard/internal/calculator"
	"StockDashboard/internal/model"
)

// Metric names in display order.
const (
	TotalTradingDays         = "Total_Trading_Days"
	AverageVolume            = "Average_Volume"
	AverageClosePrice        = "Average_Close_Price"
	LowestPrice              = "Lowest_Price"
	HighestPrice             = "Highest_Price"
	TotalReturn              = "Total_Return"
	AverageDailyReturn       = "Average_Daily_Return"
	StandardDeviationReturns = "Standard_Deviation_Returns"
	MaxDailyGain             = "Max_Daily_Gain"
	MaxDailyLoss             = "Max_Daily_Loss"
	Volatility30d            = "Volatility_30d"
)

// VolatilityWindow is the rolling window, in trading days, for Volatility_30d.
const VolatilityWindow = 30

// MockSnapshot returns the fixed statistics shown with the sample dataset.
// Only the trading-day count follows records; the rest are constants.
func MockSnapshot(records []model.DailyRecord) model.MetricsSnapshot {
	return model.NewMetricsSnapshot(
		model.Metric{Name: TotalTradingDays, Value: len(records)},
		model.Metric{Name: AverageVolume, Value: 1110000},
		model.Metric{Name: AverageClosePrice, Value: 102.2},
		model.Metric{Name: LowestPrice, Value: 100},
		model.Metric{Name: HighestPrice, Value: 105},
		model.Metric{Name: TotalReturn, Value: 5},
		model.Metric{Name: AverageDailyReturn, Value: 0.74},
		model.Metric{Name: StandardDeviationReturns, Value: 0.59},
		model.Metric{Name: MaxDailyGain, Value: 1.5},
		model.Metric{Name: MaxDailyLoss, Value: -0.3},
	)
}

// Analyze computes the statistics from records. Return statistics use only
// observed returns: derived first rows are skipped, and a statistic without
// enough observations is NaN. An empty dataset yields only Total_Trading_Days.
func Analyze(records []model.DailyRecord) (model.MetricsSnapshot, error) {
	if len(records) == 0 {
		return model.NewMetricsSnapshot(model.Metric{Name: TotalTradingDays, Value: 0}), nil
	}
	closes := calculator.ExtractCloses(records)
	volumes := calculator.ExtractVolumes(records)
	returns := calculator.ExtractReturns(records)

	avgVolume, err := calculator.Mean(volumes)
	if err != nil {
		return nil, fmt.Errorf("average volume: %w", err)
	}
	avgClose, err := calculator.Mean(closes)
	if err != nil {
		return nil, fmt.Errorf("average close: %w", err)
	}
	lowClose, highClose, err := calculator.CalculateRange(closes)
	if err != nil {
		return nil, fmt.Errorf("price range: %w", err)
	}
	totalReturn, err := calculator.TotalReturn(closes)
	if err != nil {
		return nil, fmt.Errorf("total return: %w", err)
	}
	avgReturn, stdReturn := math.NaN(), math.NaN()
	minReturn, maxReturn := math.NaN(), math.NaN()
	if len(returns) > 0 {
		if avgReturn, err = calculator.Mean(returns); err != nil {
			return nil, fmt.Errorf("average return: %w", err)
		}
		if minReturn, maxReturn, err = calculator.CalculateRange(returns); err != nil {
			return nil, fmt.Errorf("return range: %w", err)
		}
		if sd, err := calculator.SampleStdDev(returns); err == nil {
			stdReturn = sd
		}
	}

	snap := model.NewMetricsSnapshot(
		model.Metric{Name: TotalTradingDays, Value: len(records)},
		model.Metric{Name: AverageVolume, Value: avgVolume},
		model.Metric{Name: AverageClosePrice, Value: avgClose},
		model.Metric{Name: LowestPrice, Value: lowClose},
		model.Metric{Name: HighestPrice, Value: highClose},
		model.Metric{Name: TotalReturn, Value: totalReturn},
		model.Metric{Name: AverageDailyReturn, Value: avgReturn},
		model.Metric{Name: StandardDeviationReturns, Value: stdReturn},
		model.Metric{Name: MaxDailyGain, Value: maxReturn},
		model.Metric{Name: MaxDailyLoss, Value: minReturn},
	)

	if len(closes) >= VolatilityWindow {
		rolling, err := calculator.RollingStdDev(closes, VolatilityWindow)
		if err != nil {
			return nil, fmt.Errorf("rolling volatility: %w", err)
		}
		snap = snap.With(Volatility30d, rolling[len(rolling)-1])
	}
	return snap, nil
}
