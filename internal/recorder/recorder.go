package recorder

import (
	"time"

	"StockDashboard/internal/model"
)

// Snapshot is one analysis run worth keeping.
type Snapshot struct {
	Symbol     string
	Source     string // fetcher name
	Generation uint64
	Records    int
	RecordedAt time.Time
	Metrics    model.MetricsSnapshot
}

// Recorder persists historical analysis snapshots.
type Recorder interface {
	RecordSnapshot(snap *Snapshot) error
	Close() error
}
