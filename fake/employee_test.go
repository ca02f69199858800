package fake

import (
	"io"
	"testing"

	"github.com/etldemo/edk"
)

func TestEmployeeGenerator(t *testing.T) {
	es := NewEmployeeSource(111, 1000)

	names := make(map[string]int)
	depts := make(map[string]int)
	allowed := make(map[string]bool)
	for _, d := range edk.Departments {
		allowed[d] = true
	}

	for i := 0; i < 1000; i++ {
		r, err := es.Record()
		if err != nil {
			t.Fatalf("unexpected error getting record: %v", err)
		}
		rec := r.(*edk.Employee)
		if rec.ID != int64(i)+1 {
			t.Errorf("ID exp: %d, got: %d", i+1, rec.ID)
		}
		if rec.Name == "" {
			t.Errorf("empty name at %d", i)
		}
		names[rec.Name]++
		if !allowed[rec.Department] {
			t.Errorf("unknown department: %s", rec.Department)
		}
		depts[rec.Department]++
		if rec.Age < edk.MinAge || rec.Age > edk.MaxAge {
			t.Errorf("Age out of bounds: %d", rec.Age)
		}
		if rec.Salary < edk.MinSalary || rec.Salary > edk.MaxSalary {
			t.Errorf("Salary out of bounds: %f", rec.Salary)
		}
		if rec.HireDate.Before(edk.HireEpoch) || !rec.HireDate.Before(edk.HireEpoch.AddDate(0, 0, edk.HireWindowDays)) {
			t.Errorf("HireDate out of window: %v", rec.HireDate)
		}
		if err := rec.Validate(); err != nil {
			t.Errorf("generated employee invalid: %v", err)
		}
	}

	if len(depts) != len(edk.Departments) {
		t.Errorf("expected all departments to appear, got %v", depts)
	}
	if len(names) < 2 {
		t.Errorf("expected multiple names, got %v", names)
	}

	if _, err := es.Record(); err != io.EOF {
		t.Fatalf("expected io.EOF, but got %v", err)
	}
}

func TestEmployeeSourceSameSeed(t *testing.T) {
	a := NewEmployeeSource(7, 100)
	b := NewEmployeeSource(7, 100)
	for i := 0; i < 100; i++ {
		ra, err := a.Record()
		if err != nil {
			t.Fatalf("source a: %v", err)
		}
		rb, err := b.Record()
		if err != nil {
			t.Fatalf("source b: %v", err)
		}
		ea, eb := ra.(*edk.Employee), rb.(*edk.Employee)
		if *ea != *eb {
			t.Fatalf("same seed diverged at %d: %+v vs %+v", i, ea, eb)
		}
	}
}
