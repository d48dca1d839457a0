package model

// Metric is one named summary statistic.
type Metric struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// MetricsSnapshot is an insertion-ordered set of metrics. Names are unique.
type MetricsSnapshot []Metric

// NewMetricsSnapshot builds a snapshot from metrics in order. A repeated name
// replaces the earlier value but keeps its position.
func NewMetricsSnapshot(metrics ...Metric) MetricsSnapshot {
	var s MetricsSnapshot
	for _, m := range metrics {
		s = s.With(m.Name, m.Value)
	}
	return s
}

// With returns a copy of s with name set to value.
func (s MetricsSnapshot) With(name string, value any) MetricsSnapshot {
	out := make(MetricsSnapshot, len(s), len(s)+1)
	copy(out, s)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Metric{Name: name, Value: value})
}

// Get looks up a metric by name.
func (s MetricsSnapshot) Get(name string) (any, bool) {
	for _, m := range s {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Names returns the metric names in display order.
func (s MetricsSnapshot) Names() []string {
	names := make([]string, len(s))
	for i, m := range s {
		names[i] = m.Name
	}
	return names
}
