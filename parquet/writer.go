// Package parquet writes tabular rows to parquet files. The actual columnar
// encoding is entirely the parquet-go library's business; this package only
// adds file handling and error context.
package parquet

import (
	"os"

	goparquet "github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// WriteFile writes rows as a parquet file at path, one column per struct
// field, using the schema derived from T's parquet struct tags. An existing
// file at path is truncated.
func WriteFile[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	w := goparquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %d rows to %s", len(rows), path)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return errors.Wrapf(err, "closing parquet writer for %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// ReadFile reads all rows of the parquet file at path. It exists for tests
// and for poking at output files; the pipeline itself never reads parquet.
func ReadFile[T any](path string) ([]T, error) {
	rows, err := goparquet.ReadFile[T](path)
	return rows, errors.Wrapf(err, "reading %s", path)
}
