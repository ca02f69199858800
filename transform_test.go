package edk_test

import (
	"testing"

	"github.com/etldemo/edk"
)

func TestAgeGroup(t *testing.T) {
	cases := map[int]string{
		22: "Young",
		29: "Young",
		30: "Middle",
		49: "Middle",
		50: "Senior",
		65: "Senior",
	}
	for age, exp := range cases {
		if got := edk.AgeGroup(age); got != exp {
			t.Errorf("AgeGroup(%d): expected %s, got %s", age, exp, got)
		}
	}
}

func TestSalaryBand(t *testing.T) {
	cases := map[float64]string{
		30000:  "Low",
		49999:  "Low",
		50000:  "Medium",
		99999:  "Medium",
		100000: "High",
		150000: "High",
	}
	for sal, exp := range cases {
		if got := edk.SalaryBand(sal); got != exp {
			t.Errorf("SalaryBand(%f): expected %s, got %s", sal, exp, got)
		}
	}
}

func TestTransformFilter(t *testing.T) {
	trans := &edk.Transform{MinAge: 25}

	if _, ok := trans.Apply(&edk.Employee{ID: 1, Age: 24, Salary: 60000}); ok {
		t.Fatalf("expected employee below minimum age to be dropped")
	}

	enr, ok := trans.Apply(&edk.Employee{ID: 2, Age: 25, Salary: 60000})
	if !ok {
		t.Fatalf("expected employee at minimum age to be kept")
	}
	if enr.AgeGroup != "Young" || enr.SalaryBand != "Medium" {
		t.Fatalf("wrong derived fields: %v %v", enr.AgeGroup, enr.SalaryBand)
	}
}

func TestSummarize(t *testing.T) {
	rows := []edk.Enriched{
		{Employee: edk.Employee{Salary: 100}},
		{Employee: edk.Employee{Salary: 200}},
		{Employee: edk.Employee{Salary: 50}},
	}
	sum := edk.Summarize(rows)
	if sum.Headcount != 3 {
		t.Errorf("headcount: expected 3, got %d", sum.Headcount)
	}
	if sum.TotalPayroll != 350 {
		t.Errorf("total payroll: expected 350, got %f", sum.TotalPayroll)
	}
}
