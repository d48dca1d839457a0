package model

import (
	"fmt"
	"strings"
)

// SeriesKey selects which DailyRecord field drives the active chart.
type SeriesKey int

const (
	Close SeriesKey = iota
	Volume
	DailyReturn
)

// SeriesKeys lists every key in selector order.
var SeriesKeys = []SeriesKey{Close, Volume, DailyReturn}

// String returns the record field name the key selects.
func (k SeriesKey) String() string {
	switch k {
	case Close:
		return "Close"
	case Volume:
		return "Volume"
	case DailyReturn:
		return "Daily_Return"
	}
	return fmt.Sprintf("SeriesKey(%d)", int(k))
}

// Label is the human-readable option text.
func (k SeriesKey) Label() string {
	switch k {
	case Close:
		return "Close Price"
	case Volume:
		return "Volume"
	case DailyReturn:
		return "Daily Returns"
	}
	return k.String()
}

// Valid reports whether k is one of the enumerated keys.
func (k SeriesKey) Valid() bool {
	switch k {
	case Close, Volume, DailyReturn:
		return true
	}
	return false
}

// ParseSeriesKey maps a field name (case-insensitive) back to its key.
func ParseSeriesKey(s string) (SeriesKey, error) {
	name := strings.TrimSpace(s)
	for _, k := range SeriesKeys {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown series %q", s)
}

func (k SeriesKey) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal series: invalid key %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *SeriesKey) UnmarshalText(text []byte) error {
	v, err := ParseSeriesKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
