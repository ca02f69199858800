package table_test

import (
	"testing"
	"time"

	"github.com/etldemo/edk"
	"github.com/etldemo/edk/table"
)

func enrich(id int64, dept string, age int, salary float64) edk.Enriched {
	return edk.Enriched{
		Employee: edk.Employee{
			ID:         id,
			Name:       "N",
			Department: dept,
			Age:        age,
			Salary:     salary,
			HireDate:   time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		AgeGroup:   edk.AgeGroup(age),
		SalaryBand: edk.SalaryBand(salary),
	}
}

func TestByDepartment(t *testing.T) {
	// The three known records: Eng count=2 avg=150, Sales count=1 avg=50.
	tbl := table.New([]edk.Enriched{
		enrich(1, "Eng", 30, 100),
		enrich(2, "Eng", 40, 200),
		enrich(3, "Sales", 25, 50),
	})

	stats := tbl.ByDepartment()
	if len(stats) != 2 {
		t.Fatalf("expected 2 groups, got %d: %v", len(stats), stats)
	}
	eng, sales := stats[0], stats[1]
	if eng.Department != "Eng" || sales.Department != "Sales" {
		t.Fatalf("wrong sort order: %v", stats)
	}
	if eng.Count != 2 || eng.AvgSalary != 150 {
		t.Errorf("Eng: expected count=2 avg=150, got %+v", eng)
	}
	if eng.MinSalary != 100 || eng.MaxSalary != 200 || eng.AvgAge != 35 {
		t.Errorf("Eng: wrong min/max/age: %+v", eng)
	}
	if sales.Count != 1 || sales.AvgSalary != 50 {
		t.Errorf("Sales: expected count=1 avg=50, got %+v", sales)
	}

	var total int64
	for _, s := range stats {
		total += s.Count
	}
	if total != int64(tbl.Len()) {
		t.Errorf("group counts don't partition the table: %d vs %d", total, tbl.Len())
	}
}

func TestByAgeBucket(t *testing.T) {
	tbl := table.New([]edk.Enriched{
		enrich(1, "Eng", 24, 100),
		enrich(2, "Eng", 29, 200),
		enrich(3, "Eng", 30, 300),
		enrich(4, "Sales", 47, 400),
	})

	stats, err := tbl.ByAgeBucket(10)
	if err != nil {
		t.Fatalf("grouping: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 buckets, got %d: %v", len(stats), stats)
	}
	if stats[0].Bucket != "20-29" || stats[1].Bucket != "30-39" || stats[2].Bucket != "40-49" {
		t.Fatalf("wrong buckets or order: %v", stats)
	}
	if stats[0].Count != 2 || stats[0].AvgSalary != 150 {
		t.Errorf("20-29: expected count=2 avg=150, got %+v", stats[0])
	}
	if stats[0].MinSalary != 100 || stats[0].MaxSalary != 200 {
		t.Errorf("20-29: wrong min/max: %+v", stats[0])
	}

	var total int64
	for _, s := range stats {
		total += s.Count
	}
	if total != int64(tbl.Len()) {
		t.Errorf("bucket counts don't partition the table: %d vs %d", total, tbl.Len())
	}
}

func TestByAgeBucketBadWidth(t *testing.T) {
	tbl := table.New(nil)
	if _, err := tbl.ByAgeBucket(0); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestBucketLabel(t *testing.T) {
	if l := table.BucketLabel(24, 10); l != "20-29" {
		t.Errorf("expected 20-29, got %s", l)
	}
	if l := table.BucketLabel(65, 10); l != "60-69" {
		t.Errorf("expected 60-69, got %s", l)
	}
	if l := table.BucketLabel(30, 5); l != "30-34" {
		t.Errorf("expected 30-34, got %s", l)
	}
}

func TestColumnarLayout(t *testing.T) {
	tbl := table.New([]edk.Enriched{
		enrich(1, "HR", 33, 60000),
		enrich(2, "Finance", 51, 120000),
	})
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if tbl.AgeGroups[0] != "Middle" || tbl.AgeGroups[1] != "Senior" {
		t.Errorf("wrong age groups: %v", tbl.AgeGroups)
	}
	if tbl.SalaryBands[0] != "Medium" || tbl.SalaryBands[1] != "High" {
		t.Errorf("wrong salary bands: %v", tbl.SalaryBands)
	}
}
