package edk_test

import (
	"io"
	"testing"

	"github.com/etldemo/edk"
	"github.com/etldemo/edk/mock"
)

// sliceSource is an edk.Source over a fixed slice of raw records.
type sliceSource struct {
	recs []interface{}
	i    int
}

func (s *sliceSource) Record() (interface{}, error) {
	if s.i >= len(s.recs) {
		return nil, io.EOF
	}
	rec := s.recs[s.i]
	s.i++
	return rec, nil
}

func TestRunnerFiltersAndEnriches(t *testing.T) {
	src := &sliceSource{recs: []interface{}{
		&edk.Employee{ID: 1, Name: "A", Department: "Engineering", Age: 30, Salary: 100},
		&edk.Employee{ID: 2, Name: "B", Department: "Engineering", Age: 40, Salary: 200},
		&edk.Employee{ID: 3, Name: "C", Department: "Sales", Age: 19, Salary: 50},
		"garbage",
	}}

	r := edk.NewRunner(src, edk.NewEmployeeParser(), &edk.Transform{MinAge: 20})
	stats := &mock.RecordingStatter{}
	r.Stats = stats
	rows, err := r.Run()
	if err != nil {
		t.Fatalf("running: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	if stats.Counts["sourced"] != 4 || stats.Counts["parseerrors"] != 1 ||
		stats.Counts["filtered"] != 1 || stats.Counts["kept"] != 2 {
		t.Errorf("wrong stats: %v", stats.Counts)
	}
	for _, row := range rows {
		if row.Age < 20 {
			t.Errorf("record below minimum age survived the filter: %+v", row)
		}
		if row.AgeGroup == "" || row.SalaryBand == "" {
			t.Errorf("missing derived fields: %+v", row)
		}
	}
}

func TestRunnerEmptySource(t *testing.T) {
	r := edk.NewRunner(&sliceSource{}, edk.NewEmployeeParser(), &edk.Transform{})
	rows, err := r.Run()
	if err != nil {
		t.Fatalf("running: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
