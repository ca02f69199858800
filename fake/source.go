package fake

import (
	"io"

	"github.com/etldemo/edk"
)

// EmployeeSource is an edk.Source which generates fake employee data.
type EmployeeSource struct {
	max uint64
	n   *edk.Nexter
	eg  *EmployeeGenerator
}

// NewEmployeeSource creates a new Source with the given random seed. A max
// of 0 means the source never runs out. IDs are assigned sequentially from
// 1 so they are unique within a run.
func NewEmployeeSource(seed int64, max uint64) *EmployeeSource {
	return &EmployeeSource{
		max: max,
		n:   edk.NewNexter(),
		eg:  NewEmployeeGenerator(seed),
	}
}

// Record implements edk.Source and returns a randomly generated employee.
func (s *EmployeeSource) Record() (interface{}, error) {
	next := s.n.Next()
	if s.max > 0 && next >= s.max {
		return nil, io.EOF
	}
	emp := s.eg.Record()
	emp.ID = int64(next) + 1
	return emp, nil
}
