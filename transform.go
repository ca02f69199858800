package edk

// Age group boundaries, matching the original Spark job: Young below 30,
// Middle below 50, Senior from 50 up.
const (
	youngBelow  = 30
	middleBelow = 50
)

// Salary band boundaries: Low below 50k, Medium below 100k, High from 100k.
const (
	lowBelow    = 50000
	mediumBelow = 100000
)

// AgeGroup returns the age group label for an age.
func AgeGroup(age int) string {
	switch {
	case age < youngBelow:
		return "Young"
	case age < middleBelow:
		return "Middle"
	default:
		return "Senior"
	}
}

// SalaryBand returns the salary band label for a salary.
func SalaryBand(salary float64) string {
	switch {
	case salary < lowBelow:
		return "Low"
	case salary < mediumBelow:
		return "Medium"
	default:
		return "High"
	}
}

// Transform is the record-level stage: a minimum-age filter followed by
// derivation of the age group and salary band labels.
type Transform struct {
	// MinAge drops every employee younger than this. Zero keeps everyone.
	MinAge int
}

// Apply filters and enriches a single employee. The second return is false
// if the record was dropped by the filter.
func (t *Transform) Apply(e *Employee) (Enriched, bool) {
	if e.Age < t.MinAge {
		return Enriched{}, false
	}
	return Enriched{
		Employee:   *e,
		AgeGroup:   AgeGroup(e.Age),
		SalaryBand: SalaryBand(e.Salary),
	}, true
}

// Summary is the reduction over the enriched records. It is logged at the
// end of a run for verification and never persisted.
type Summary struct {
	Headcount    int
	TotalPayroll float64
}

// Summarize reduces the enriched records to a Summary.
func Summarize(rows []Enriched) Summary {
	s := Summary{}
	for i := range rows {
		s.Headcount++
		s.TotalPayroll += rows[i].Salary
	}
	return s
}
