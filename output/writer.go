// Package output persists the processed table and the two aggregate tables
// as columnar files. All three files are staged in a temporary directory and
// renamed into place only after every write has succeeded, so a failed run
// never leaves partial output behind.
package output

import (
	"os"
	"path/filepath"

	"github.com/etldemo/edk/avro"
	"github.com/etldemo/edk/parquet"
	"github.com/etldemo/edk/table"
	"github.com/pkg/errors"
)

// Format selects the output file format.
type Format string

// The supported output formats.
const (
	Parquet Format = "parquet"
	Avro    Format = "avro"
)

// Base names of the three output files, matching the original job's output.
const (
	ProcessedName       = "processed_data"
	DepartmentStatsName = "department_stats"
	AgeStatsName        = "age_stats"
)

// Writer writes the three output tables into Dir.
type Writer struct {
	Dir    string
	Format Format
}

// Validate checks the writer configuration before any processing happens.
func (w *Writer) Validate() error {
	if w.Dir == "" {
		return errors.New("output directory is empty")
	}
	switch w.Format {
	case Parquet, Avro:
		return nil
	}
	return errors.Errorf("unsupported output format %q", w.Format)
}

// Paths returns the final paths of the three output files in write order.
func (w *Writer) Paths() []string {
	ext := "." + string(w.Format)
	return []string{
		filepath.Join(w.Dir, ProcessedName+ext),
		filepath.Join(w.Dir, DepartmentStatsName+ext),
		filepath.Join(w.Dir, AgeStatsName+ext),
	}
}

// WriteAll writes the processed table and both aggregate tables, overwriting
// any prior output for the same paths. Either all three files end up in Dir
// or none do.
func (w *Writer) WriteAll(t *table.Employees, depts []table.DepartmentStats, ages []table.AgeBucketStats) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", w.Dir)
	}
	// Staging inside Dir keeps the final rename on one filesystem.
	staging, err := os.MkdirTemp(w.Dir, ".staging-")
	if err != nil {
		return errors.Wrap(err, "creating staging directory")
	}
	defer os.RemoveAll(staging)

	names := []string{ProcessedName, DepartmentStatsName, AgeStatsName}
	ext := "." + string(w.Format)
	for _, name := range names {
		if err := w.writeOne(filepath.Join(staging, name+ext), name, t, depts, ages); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}
	for _, name := range names {
		if err := os.Rename(filepath.Join(staging, name+ext), filepath.Join(w.Dir, name+ext)); err != nil {
			return errors.Wrapf(err, "finalizing %s", name)
		}
	}
	return nil
}

func (w *Writer) writeOne(path, name string, t *table.Employees, depts []table.DepartmentStats, ages []table.AgeBucketStats) error {
	switch w.Format {
	case Parquet:
		switch name {
		case ProcessedName:
			return parquet.WriteFile(path, processedRows(t))
		case DepartmentStatsName:
			return parquet.WriteFile(path, departmentRows(depts))
		case AgeStatsName:
			return parquet.WriteFile(path, ageBucketRows(ages))
		}
	case Avro:
		switch name {
		case ProcessedName:
			return avro.WriteFile(path, processedSchema, processedNative(processedRows(t)))
		case DepartmentStatsName:
			return avro.WriteFile(path, departmentSchema, departmentNative(departmentRows(depts)))
		case AgeStatsName:
			return avro.WriteFile(path, ageBucketSchema, ageBucketNative(ageBucketRows(ages)))
		}
	}
	return errors.Errorf("unknown table %q", name)
}
