package output

import (
	"time"

	"github.com/etldemo/edk/table"
)

// ProcessedRow is the file schema of the full processed table: the employee
// fields plus the two derived columns.
type ProcessedRow struct {
	ID         int64     `parquet:"id"`
	Name       string    `parquet:"name"`
	Department string    `parquet:"department"`
	Age        int64     `parquet:"age"`
	Salary     float64   `parquet:"salary"`
	HireDate   time.Time `parquet:"hire_date,timestamp"`
	AgeGroup   string    `parquet:"age_group"`
	SalaryBand string    `parquet:"salary_band"`
}

// DepartmentRow is the file schema of the per-department aggregate table.
type DepartmentRow struct {
	Department string  `parquet:"department"`
	Count      int64   `parquet:"employee_count"`
	AvgSalary  float64 `parquet:"avg_salary"`
	MinSalary  float64 `parquet:"min_salary"`
	MaxSalary  float64 `parquet:"max_salary"`
	AvgAge     float64 `parquet:"avg_age"`
}

// AgeBucketRow is the file schema of the per-age-bucket aggregate table.
type AgeBucketRow struct {
	Bucket    string  `parquet:"age_bucket"`
	Count     int64   `parquet:"count"`
	AvgSalary float64 `parquet:"avg_salary"`
	MinSalary float64 `parquet:"min_salary"`
	MaxSalary float64 `parquet:"max_salary"`
}

func processedRows(t *table.Employees) []ProcessedRow {
	rows := make([]ProcessedRow, t.Len())
	for i := range rows {
		rows[i] = ProcessedRow{
			ID:         t.IDs[i],
			Name:       t.Names[i],
			Department: t.Departments[i],
			Age:        t.Ages[i],
			Salary:     t.Salaries[i],
			HireDate:   t.HireDates[i],
			AgeGroup:   t.AgeGroups[i],
			SalaryBand: t.SalaryBands[i],
		}
	}
	return rows
}

func departmentRows(stats []table.DepartmentStats) []DepartmentRow {
	rows := make([]DepartmentRow, len(stats))
	for i, s := range stats {
		rows[i] = DepartmentRow{
			Department: s.Department,
			Count:      s.Count,
			AvgSalary:  s.AvgSalary,
			MinSalary:  s.MinSalary,
			MaxSalary:  s.MaxSalary,
			AvgAge:     s.AvgAge,
		}
	}
	return rows
}

func ageBucketRows(stats []table.AgeBucketStats) []AgeBucketRow {
	rows := make([]AgeBucketRow, len(stats))
	for i, s := range stats {
		rows[i] = AgeBucketRow{
			Bucket:    s.Bucket,
			Count:     s.Count,
			AvgSalary: s.AvgSalary,
			MinSalary: s.MinSalary,
			MaxSalary: s.MaxSalary,
		}
	}
	return rows
}

// Avro schemas for the three output tables. Column names and order match
// the parquet tags above.
const (
	processedSchema = `{
		"type": "record", "name": "ProcessedEmployee", "fields": [
			{"name": "id", "type": "long"},
			{"name": "name", "type": "string"},
			{"name": "department", "type": "string"},
			{"name": "age", "type": "long"},
			{"name": "salary", "type": "double"},
			{"name": "hire_date", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "age_group", "type": "string"},
			{"name": "salary_band", "type": "string"}
		]
	}`

	departmentSchema = `{
		"type": "record", "name": "DepartmentStats", "fields": [
			{"name": "department", "type": "string"},
			{"name": "employee_count", "type": "long"},
			{"name": "avg_salary", "type": "double"},
			{"name": "min_salary", "type": "double"},
			{"name": "max_salary", "type": "double"},
			{"name": "avg_age", "type": "double"}
		]
	}`

	ageBucketSchema = `{
		"type": "record", "name": "AgeBucketStats", "fields": [
			{"name": "age_bucket", "type": "string"},
			{"name": "count", "type": "long"},
			{"name": "avg_salary", "type": "double"},
			{"name": "min_salary", "type": "double"},
			{"name": "max_salary", "type": "double"}
		]
	}`
)

func processedNative(rows []ProcessedRow) []interface{} {
	recs := make([]interface{}, len(rows))
	for i, r := range rows {
		recs[i] = map[string]interface{}{
			"id":          r.ID,
			"name":        r.Name,
			"department":  r.Department,
			"age":         r.Age,
			"salary":      r.Salary,
			"hire_date":   r.HireDate,
			"age_group":   r.AgeGroup,
			"salary_band": r.SalaryBand,
		}
	}
	return recs
}

func departmentNative(rows []DepartmentRow) []interface{} {
	recs := make([]interface{}, len(rows))
	for i, r := range rows {
		recs[i] = map[string]interface{}{
			"department":     r.Department,
			"employee_count": r.Count,
			"avg_salary":     r.AvgSalary,
			"min_salary":     r.MinSalary,
			"max_salary":     r.MaxSalary,
			"avg_age":        r.AvgAge,
		}
	}
	return recs
}

func ageBucketNative(rows []AgeBucketRow) []interface{} {
	recs := make([]interface{}, len(rows))
	for i, r := range rows {
		recs[i] = map[string]interface{}{
			"age_bucket": r.Bucket,
			"count":      r.Count,
			"avg_salary": r.AvgSalary,
			"min_salary": r.MinSalary,
			"max_salary": r.MaxSalary,
		}
	}
	return recs
}
