package edk

import (
	"time"

	"github.com/pkg/errors"
)

// Departments are the allowed department values for generated employees.
var Departments = []string{"Engineering", "Sales", "Marketing", "HR", "Finance"}

// Bounds for generated employee fields. Employees from external sources are
// not held to these; Validate only rejects values that are nonsensical.
const (
	MinAge = 22
	MaxAge = 65

	MinSalary = 30000
	MaxSalary = 150000
)

// HireEpoch is the start of the window hire dates are generated in.
var HireEpoch = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

// HireWindowDays is the length of the hire date window in days.
const HireWindowDays = 3650

// Employee is one synthetic employee record. Employees are immutable once
// generated; downstream stages derive new values rather than mutating them.
type Employee struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Age        int       `json:"age"`
	Salary     float64   `json:"salary"`
	HireDate   time.Time `json:"hire_date"`
}

// Validate checks an employee against the documented field bounds. Sourced
// (as opposed to generated) employees go through here before entering the
// pipeline.
func (e *Employee) Validate() error {
	if e.ID <= 0 {
		return errors.Errorf("employee id must be positive, got %d", e.ID)
	}
	if e.Name == "" {
		return errors.New("employee name is empty")
	}
	if e.Department == "" {
		return errors.New("employee department is empty")
	}
	if e.Age < 0 {
		return errors.Errorf("employee %d has negative age %d", e.ID, e.Age)
	}
	if e.Salary <= 0 {
		return errors.Errorf("employee %d has non-positive salary %f", e.ID, e.Salary)
	}
	return nil
}

// Enriched is an employee plus the fields derived by the record-level
// transform stage.
type Enriched struct {
	Employee

	AgeGroup   string `json:"age_group"`
	SalaryBand string `json:"salary_band"`
}
