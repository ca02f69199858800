// Package avro writes tabular rows to Avro object container files, as an
// alternative columnar-ish output format for consumers that speak Avro but
// not parquet.
package avro

import (
	"io"
	"os"

	goavro "github.com/linkedin/goavro/v2"
	"github.com/pkg/errors"
)

// WriteFile writes the records to an Avro OCF file at path using the given
// schema (JSON). Records must be in goavro native form, typically
// map[string]interface{} with time.Time for timestamp-millis fields. An
// existing file at path is truncated.
func WriteFile(path, schema string, recs []interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	w, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:      f,
		Schema: schema,
	})
	if err != nil {
		f.Close()
		return errors.Wrap(err, "getting OCF writer")
	}
	if err := w.Append(recs); err != nil {
		f.Close()
		return errors.Wrapf(err, "appending %d records to %s", len(recs), path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// ReadFile reads back all records of an Avro OCF file. Used by tests.
func ReadFile(path string) ([]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	r, err := goavro.NewOCFReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "getting OCF reader")
	}
	var recs []interface{}
	for r.Scan() {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading record %d", len(recs))
		}
		recs = append(recs, rec)
	}
	return recs, errors.Wrap(r.Err(), "scanning OCF")
}
