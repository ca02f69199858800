package employees_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/etldemo/edk/ledger"
	"github.com/etldemo/edk/output"
	"github.com/etldemo/edk/parquet"
	"github.com/etldemo/edk/usecase/employees"
)

func TestEmployees(t *testing.T) {
	dir := t.TempDir()
	main := employees.NewMain()
	main.Seed = 42
	main.Num = 1000
	main.Output = dir

	if err := main.Run(); err != nil {
		t.Fatalf("running: %v", err)
	}

	proc, err := parquet.ReadFile[output.ProcessedRow](filepath.Join(dir, "processed_data.parquet"))
	if err != nil {
		t.Fatalf("reading processed data: %v", err)
	}
	if len(proc) == 0 || len(proc) > 1000 {
		t.Fatalf("unreasonable number of processed rows: %d", len(proc))
	}
	seen := make(map[int64]bool)
	for _, row := range proc {
		if int(row.Age) < main.MinAge {
			t.Fatalf("row survived the age filter: %+v", row)
		}
		if seen[row.ID] {
			t.Fatalf("duplicate id %d", row.ID)
		}
		seen[row.ID] = true
		if row.AgeGroup == "" || row.SalaryBand == "" {
			t.Fatalf("missing derived fields: %+v", row)
		}
	}

	depts, err := parquet.ReadFile[output.DepartmentRow](filepath.Join(dir, "department_stats.parquet"))
	if err != nil {
		t.Fatalf("reading department stats: %v", err)
	}
	ages, err := parquet.ReadFile[output.AgeBucketRow](filepath.Join(dir, "age_stats.parquet"))
	if err != nil {
		t.Fatalf("reading age stats: %v", err)
	}
	var dsum, asum int64
	for _, d := range depts {
		dsum += d.Count
	}
	for _, a := range ages {
		asum += a.Count
	}
	if dsum != int64(len(proc)) || asum != int64(len(proc)) {
		t.Fatalf("group counts don't sum to total: depts %d, ages %d, total %d", dsum, asum, len(proc))
	}
}

func TestEmployeesReproducible(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	for _, dir := range []string{dirA, dirB} {
		main := employees.NewMain()
		main.Seed = 99
		main.Num = 500
		main.Output = dir
		if err := main.Run(); err != nil {
			t.Fatalf("running into %s: %v", dir, err)
		}
	}
	for _, name := range []string{"processed_data.parquet", "department_stats.parquet", "age_stats.parquet"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("same seed produced different %s", name)
		}
	}
}

func TestEmployeesZeroNum(t *testing.T) {
	main := employees.NewMain()
	main.Num = 0
	main.Output = t.TempDir()
	if err := main.Run(); err == nil {
		t.Fatalf("expected error for zero num")
	}
}

func TestEmployeesBadBucketWidth(t *testing.T) {
	main := employees.NewMain()
	main.Seed = 1
	main.BucketWidth = 0
	main.Output = t.TempDir()
	if err := main.Run(); err == nil {
		t.Fatalf("expected error for zero bucket width")
	}
}

func TestEmployeesLedger(t *testing.T) {
	dir := t.TempDir()
	main := employees.NewMain()
	main.Seed = 7
	main.Num = 100
	main.Output = dir
	main.Ledger = filepath.Join(dir, "runs.db")

	if err := main.Run(); err != nil {
		t.Fatalf("running: %v", err)
	}

	l, err := ledger.Open(main.Ledger)
	if err != nil {
		t.Fatalf("opening ledger: %v", err)
	}
	defer l.Close()
	runs, err := l.Runs()
	if err != nil {
		t.Fatalf("reading runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Source != "fake" || runs[0].Seed != 7 || runs[0].Sourced != 100 {
		t.Fatalf("wrong run entry: %+v", runs[0])
	}
	if runs[0].Kept <= 0 || runs[0].Kept > runs[0].Sourced {
		t.Fatalf("unreasonable kept count: %+v", runs[0])
	}
}

func TestFileMainAggregates(t *testing.T) {
	indir := t.TempDir()
	input := `{"id": 1, "name": "Alice", "department": "Engineering", "age": 30, "salary": 150}
{"id": 2, "name": "Bob", "department": "Engineering", "age": 40, "salary": 150}
{"id": 3, "name": "Carol", "department": "Sales", "age": 35, "salary": 50}
`
	if err := os.WriteFile(filepath.Join(indir, "emps.json"), []byte(input), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	outdir := t.TempDir()
	main := employees.NewFileMain()
	main.Path = filepath.Join(indir, "emps.json")
	main.Output = outdir

	if err := main.Run(); err != nil {
		t.Fatalf("running: %v", err)
	}

	depts, err := parquet.ReadFile[output.DepartmentRow](filepath.Join(outdir, "department_stats.parquet"))
	if err != nil {
		t.Fatalf("reading department stats: %v", err)
	}
	if len(depts) != 2 {
		t.Fatalf("expected 2 departments, got %+v", depts)
	}
	if depts[0].Department != "Engineering" || depts[0].Count != 2 || depts[0].AvgSalary != 150 {
		t.Fatalf("wrong Engineering stats: %+v", depts[0])
	}
	if depts[1].Department != "Sales" || depts[1].Count != 1 || depts[1].AvgSalary != 50 {
		t.Fatalf("wrong Sales stats: %+v", depts[1])
	}
}

func TestFileMainChannelEnv(t *testing.T) {
	indir := t.TempDir()
	if err := os.WriteFile(filepath.Join(indir, "emps.json"),
		[]byte(`{"id": 1, "name": "Alice", "department": "HR", "age": 50, "salary": 60000}`), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	t.Setenv("SM_CHANNEL_TRAINING", indir)

	outdir := t.TempDir()
	main := employees.NewFileMain()
	main.Output = outdir
	if err := main.Run(); err != nil {
		t.Fatalf("running: %v", err)
	}
	proc, err := parquet.ReadFile[output.ProcessedRow](filepath.Join(outdir, "processed_data.parquet"))
	if err != nil {
		t.Fatalf("reading processed data: %v", err)
	}
	if len(proc) != 1 || proc[0].Department != "HR" {
		t.Fatalf("wrong processed rows: %+v", proc)
	}
}

func TestEmployeesManagedOutputDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SM_TRAINING_ENV", `{"job_name": "demo"}`)
	t.Setenv("SM_OUTPUT_DATA_DIR", dir)

	main := employees.NewMain()
	main.Seed = 3
	main.Num = 10
	// Output is left at the default so the managed override applies.

	if err := main.Run(); err != nil {
		t.Fatalf("running: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "processed_data.parquet")); err != nil {
		t.Fatalf("expected output in SM_OUTPUT_DATA_DIR: %v", err)
	}
}

func TestFileMainNoPath(t *testing.T) {
	t.Setenv("SM_CHANNEL_TRAINING", "")
	main := employees.NewFileMain()
	if err := main.Run(); err == nil {
		t.Fatalf("expected error with no input path")
	}
}

func TestCSVMainNoURLs(t *testing.T) {
	main := employees.NewCSVMain()
	if err := main.Run(); err == nil {
		t.Fatalf("expected error with no urls")
	}
}

func TestS3MainNoBucket(t *testing.T) {
	main := employees.NewS3Main()
	if err := main.Run(); err == nil {
		t.Fatalf("expected error with no bucket")
	}
}
