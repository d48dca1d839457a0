package model

// DailyRecord is one trading day of the dashboard's time series.
type DailyRecord struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Close       float64 `json:"close"`
	Volume      int64   `json:"volume"`
	DailyReturn float64 `json:"daily_return"` // percent
	// NoReturn is set when DailyReturn was derived without a previous close.
	// Such a row plots as 0 but is not a return observation.
	NoReturn bool `json:"-"`
}

// Value returns the field of r selected by key.
func (r DailyRecord) Value(key SeriesKey) (float64, bool) {
	switch key {
	case Close:
		return r.Close, true
	case Volume:
		return float64(r.Volume), true
	case DailyReturn:
		return r.DailyReturn, true
	}
	return 0, false
}

// CloneRecords returns a copy of records so holders never share a backing array.
func CloneRecords(records []DailyRecord) []DailyRecord {
	if records == nil {
		return nil
	}
	out := make([]DailyRecord, len(records))
	copy(out, records)
	return out
}
