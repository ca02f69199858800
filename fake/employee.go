package fake

import (
	"math/rand"

	"github.com/etldemo/edk"
	"github.com/etldemo/edk/fake/gen"
)

// EmployeeGenerator generates fake Employees.
type EmployeeGenerator struct {
	g *gen.Generator
	r *rand.Rand
}

// NewEmployeeGenerator initializes a new EmployeeGenerator. Using the same
// seed gives the same series of employees on a given version of Go.
func NewEmployeeGenerator(seed int64) *EmployeeGenerator {
	return &EmployeeGenerator{
		g: gen.NewGenerator(seed),
		r: rand.New(rand.NewSource(seed + 1)),
	}
}

// Record returns a random Employee with realistic-ish values: age and
// salary uniform within the documented bounds, hire date within the hire
// window, name zipfian over a small list so some names dominate. The ID is
// left zero; sources assign unique IDs.
func (e *EmployeeGenerator) Record() *edk.Employee {
	return &edk.Employee{
		Name:       nameList[e.g.Uint64(len(nameList))],
		Department: edk.Departments[e.r.Intn(len(edk.Departments))],
		Age:        e.g.IntRange(edk.MinAge, edk.MaxAge),
		Salary:     float64(e.g.IntRange(edk.MinSalary, edk.MaxSalary)),
		HireDate:   e.g.Date(edk.HireEpoch, edk.HireWindowDays),
	}
}

var nameList = []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry"}
