// Package table holds the columnar, in-memory representation of the enriched
// employee records and computes the grouped aggregations over it. Row order
// follows insertion order; aggregate rows are sorted by their group key so
// output is deterministic.
package table

import (
	"fmt"
	"sort"
	"time"

	"github.com/etldemo/edk"
	"github.com/pkg/errors"
)

// Employees is a columnar materialization of enriched employee rows: one
// slice per field, including the derived fields, all of equal length.
type Employees struct {
	IDs         []int64
	Names       []string
	Departments []string
	Ages        []int64
	Salaries    []float64
	HireDates   []time.Time
	AgeGroups   []string
	SalaryBands []string
}

// New builds a columnar table from row-oriented enriched records.
func New(rows []edk.Enriched) *Employees {
	t := &Employees{
		IDs:         make([]int64, len(rows)),
		Names:       make([]string, len(rows)),
		Departments: make([]string, len(rows)),
		Ages:        make([]int64, len(rows)),
		Salaries:    make([]float64, len(rows)),
		HireDates:   make([]time.Time, len(rows)),
		AgeGroups:   make([]string, len(rows)),
		SalaryBands: make([]string, len(rows)),
	}
	for i := range rows {
		t.IDs[i] = rows[i].ID
		t.Names[i] = rows[i].Name
		t.Departments[i] = rows[i].Department
		t.Ages[i] = int64(rows[i].Age)
		t.Salaries[i] = rows[i].Salary
		t.HireDates[i] = rows[i].HireDate
		t.AgeGroups[i] = rows[i].AgeGroup
		t.SalaryBands[i] = rows[i].SalaryBand
	}
	return t
}

// Len returns the number of rows in the table.
func (t *Employees) Len() int {
	return len(t.IDs)
}

// DepartmentStats is one aggregate row of the per-department grouping.
type DepartmentStats struct {
	Department string
	Count      int64
	AvgSalary  float64
	MinSalary  float64
	MaxSalary  float64
	AvgAge     float64
}

// AgeBucketStats is one aggregate row of the per-age-bucket grouping.
type AgeBucketStats struct {
	Bucket    string
	Count     int64
	AvgSalary float64
	MinSalary float64
	MaxSalary float64
}

type acc struct {
	count     int64
	salarySum float64
	salaryMin float64
	salaryMax float64
	ageSum    int64
}

func (a *acc) add(salary float64, age int64) {
	if a.count == 0 || salary < a.salaryMin {
		a.salaryMin = salary
	}
	if a.count == 0 || salary > a.salaryMax {
		a.salaryMax = salary
	}
	a.count++
	a.salarySum += salary
	a.ageSum += age
}

// ByDepartment groups the table by department and computes count, salary
// statistics, and average age per group. Every row lands in exactly one
// group; rows come back sorted by department name.
func (t *Employees) ByDepartment() []DepartmentStats {
	accs := make(map[string]*acc)
	for i := range t.Departments {
		a, ok := accs[t.Departments[i]]
		if !ok {
			a = &acc{}
			accs[t.Departments[i]] = a
		}
		a.add(t.Salaries[i], t.Ages[i])
	}

	stats := make([]DepartmentStats, 0, len(accs))
	for dept, a := range accs {
		stats = append(stats, DepartmentStats{
			Department: dept,
			Count:      a.count,
			AvgSalary:  a.salarySum / float64(a.count),
			MinSalary:  a.salaryMin,
			MaxSalary:  a.salaryMax,
			AvgAge:     float64(a.ageSum) / float64(a.count),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Department < stats[j].Department })
	return stats
}

// ByAgeBucket groups the table into fixed-width age buckets of the given
// width in years and computes count and salary statistics per bucket. Rows
// come back sorted by the bucket's lower bound.
func (t *Employees) ByAgeBucket(width int) ([]AgeBucketStats, error) {
	if width <= 0 {
		return nil, errors.Errorf("age bucket width must be positive, got %d", width)
	}

	accs := make(map[int64]*acc)
	for i := range t.Ages {
		low := (t.Ages[i] / int64(width)) * int64(width)
		a, ok := accs[low]
		if !ok {
			a = &acc{}
			accs[low] = a
		}
		a.add(t.Salaries[i], t.Ages[i])
	}

	lows := make([]int64, 0, len(accs))
	for low := range accs {
		lows = append(lows, low)
	}
	sort.Slice(lows, func(i, j int) bool { return lows[i] < lows[j] })

	stats := make([]AgeBucketStats, 0, len(accs))
	for _, low := range lows {
		a := accs[low]
		stats = append(stats, AgeBucketStats{
			Bucket:    BucketLabel(int(low), width),
			Count:     a.count,
			AvgSalary: a.salarySum / float64(a.count),
			MinSalary: a.salaryMin,
			MaxSalary: a.salaryMax,
		})
	}
	return stats, nil
}

// BucketLabel returns the label of the fixed-width bucket containing age,
// e.g. "20-29" for age 24 and width 10.
func BucketLabel(age, width int) string {
	low := (age / width) * width
	return fmt.Sprintf("%d-%d", low, low+width-1)
}
