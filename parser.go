package edk

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// EmployeeParser parses raw records into Employees. It accepts *Employee
// (passed through after validation), map[string]interface{} as produced by
// JSON decoding, and map[string]string as produced by the CSV source. The
// zero value is ready to use.
type EmployeeParser struct {
	// SkipValidation passes records through without bounds checking. Used by
	// tests; generated data does not need it either way.
	SkipValidation bool
}

// NewEmployeeParser returns a new EmployeeParser.
func NewEmployeeParser() *EmployeeParser {
	return &EmployeeParser{}
}

// Parse implements Parser.
func (p *EmployeeParser) Parse(data interface{}) (*Employee, error) {
	var emp *Employee
	var err error
	switch rec := data.(type) {
	case *Employee:
		emp = rec
	case Employee:
		emp = &rec
	case map[string]interface{}:
		emp, err = parseInterfaceMap(rec)
	case map[string]string:
		emp, err = parseStringMap(rec)
	default:
		return nil, errors.Errorf("can't parse a %T as an employee", data)
	}
	if err != nil {
		return nil, err
	}
	if !p.SkipValidation {
		if err := emp.Validate(); err != nil {
			return nil, errors.Wrap(err, "validating employee")
		}
	}
	return emp, nil
}

func parseInterfaceMap(rec map[string]interface{}) (*Employee, error) {
	emp := &Employee{}
	var err error
	for key, val := range rec {
		switch key {
		case "id":
			emp.ID, err = toInt64(val)
		case "name":
			emp.Name, err = toString(val)
		case "department":
			emp.Department, err = toString(val)
		case "age":
			var age int64
			age, err = toInt64(val)
			emp.Age = int(age)
		case "salary":
			emp.Salary, err = toFloat64(val)
		case "hire_date":
			var s string
			s, err = toString(val)
			if err == nil {
				emp.HireDate, err = parseDate(s)
			}
		}
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", key)
		}
	}
	return emp, nil
}

func parseStringMap(rec map[string]string) (*Employee, error) {
	emp := &Employee{}
	var err error
	for key, val := range rec {
		switch key {
		case "id":
			emp.ID, err = strconv.ParseInt(val, 10, 64)
		case "name":
			emp.Name = val
		case "department":
			emp.Department = val
		case "age":
			emp.Age, err = strconv.Atoi(val)
		case "salary":
			emp.Salary, err = strconv.ParseFloat(val, 64)
		case "hire_date":
			emp.HireDate, err = parseDate(val)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "field %q value %q", key, val)
		}
	}
	return emp, nil
}

// parseDate accepts both plain calendar dates and RFC3339 timestamps, since
// JSON-encoded employees carry the latter.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, errors.Wrapf(err, "parsing date %q", s)
}

func toInt64(val interface{}) (int64, error) {
	switch v := val.(type) {
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, errors.Errorf("can't convert %T to integer", val)
}

func toFloat64(val interface{}) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, errors.Errorf("can't convert %T to float", val)
}

func toString(val interface{}) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", errors.Errorf("can't convert %T to string", val)
	}
	return s, nil
}
