package modifiers

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"StockDashboard/internal/model"
	"StockDashboard/internal/state/actions"
	"StockDashboard/internal/state/data"
)

var sample = []model.DailyRecord{
	{Date: "2024-01-01", Close: 100, Volume: 1000000, DailyReturn: 0.5},
	{Date: "2024-01-02", Close: 102, Volume: 1200000, DailyReturn: 1.2},
}

func TestSeed(t *testing.T) {
	metrics := model.NewMetricsSnapshot(model.Metric{Name: "Lowest_Price", Value: 100})

	s := Seed(data.State{}, actions.Seed(sample, metrics)).(data.State)
	if !s.Seeded || s.Status != model.StatusLoaded {
		t.Errorf("expected seeded/loaded state, got %+v", s)
	}
	if diff := pretty.Compare(sample, s.Records); diff != "" {
		t.Errorf("records: -want/+got:\n%s", diff)
	}

	again := Seed(s, actions.Seed(nil, nil)).(data.State)
	if len(again.Records) != 2 || len(again.Metrics) != 1 {
		t.Errorf("second seed must be ignored, got %+v", again)
	}
}

func TestSeed_CopiesRecords(t *testing.T) {
	in := model.CloneRecords(sample)
	s := Seed(data.State{}, actions.Seed(in, nil)).(data.State)
	in[0].Close = 1
	if s.Records[0].Close != 100 {
		t.Error("stored records share the caller's backing array")
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		desc string
		key  model.SeriesKey
		want model.SeriesKey
	}{
		{desc: "volume", key: model.Volume, want: model.Volume},
		{desc: "daily return", key: model.DailyReturn, want: model.DailyReturn},
		{desc: "invalid ignored", key: model.SeriesKey(11), want: model.Close},
	}
	for _, test := range tests {
		s := Select(data.State{Selected: model.Close}, actions.Select(test.key)).(data.State)
		if s.Selected != test.want {
			t.Errorf("TestSelect(%s): got %v, want %v", test.desc, s.Selected, test.want)
		}
	}
}

func TestLoad_LastWriteWins(t *testing.T) {
	s := data.State{}
	s = Load(s, actions.LoadStarted(1)).(data.State)
	if s.Status != model.StatusLoading {
		t.Fatalf("expected loading, got %v", s.Status)
	}

	s = Load(s, actions.LoadSucceeded(2, sample, nil)).(data.State)
	if s.Generation != 2 || len(s.Records) != 2 {
		t.Fatalf("expected generation 2 applied, got %+v", s)
	}

	stale := Load(s, actions.LoadSucceeded(1, nil, nil)).(data.State)
	if diff := pretty.Compare(s, stale); diff != "" {
		t.Errorf("stale result applied: -want/+got:\n%s", diff)
	}
}

func TestLoad_Failure(t *testing.T) {
	s := Load(data.State{Records: sample, Generation: 1}, actions.LoadFailed(2, errTest("timeout"))).(data.State)
	if s.Status != model.StatusLoadFailed || s.LoadError != "timeout" {
		t.Errorf("expected load failure, got %+v", s)
	}
	if len(s.Records) != 2 {
		t.Error("failed load dropped the held dataset")
	}

	old := Load(data.State{Generation: 3, Status: model.StatusLoaded}, actions.LoadFailed(2, errTest("late"))).(data.State)
	if old.Status != model.StatusLoaded {
		t.Errorf("stale failure applied: %v", old.Status)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
