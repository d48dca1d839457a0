package selector

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"StockDashboard/internal/model"
)

type recorder struct {
	calls []model.SeriesKey
}

func (r *recorder) Select(k model.SeriesKey) error {
	r.calls = append(r.calls, k)
	return nil
}

func TestOptions(t *testing.T) {
	want := []Option{
		{Value: "Close", Label: "Close Price"},
		{Value: "Volume", Label: "Volume"},
		{Value: "Daily_Return", Label: "Daily Returns"},
	}
	if diff := pretty.Compare(want, Options()); diff != "" {
		t.Errorf("Options: -want/+got:\n%s", diff)
	}
}

func TestChange(t *testing.T) {
	r := &recorder{}
	s := New(r)
	for _, o := range Options() {
		if _, err := s.Change(o.Value); err != nil {
			t.Errorf("Change(%s): %v", o.Value, err)
		}
	}
	if diff := pretty.Compare(model.SeriesKeys, r.calls); diff != "" {
		t.Errorf("calls: -want/+got:\n%s", diff)
	}
}

func TestChange_Rejects(t *testing.T) {
	r := &recorder{}
	if _, err := New(r).Change("Open"); err == nil {
		t.Error("expected error for value outside the option set")
	}
	if len(r.calls) != 0 {
		t.Errorf("mutator called for rejected value: %v", r.calls)
	}
}
