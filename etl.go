package edk

import (
	"io"
	"log"

	"github.com/pkg/errors"
)

// Runner drains a Source through the Parser and Transform stages and
// collects the surviving, enriched records. The run is strictly sequential:
// with a seeded source, two runs produce identical slices, which is what
// makes seeded output reproducible byte for byte.
type Runner struct {
	Stats Statter

	src    Source
	parser Parser
	trans  *Transform
}

// NewRunner returns a Runner over the given stages.
func NewRunner(src Source, parser Parser, trans *Transform) *Runner {
	return &Runner{
		Stats:  NopStatter{},
		src:    src,
		parser: parser,
		trans:  trans,
	}
}

// Run consumes the source until io.EOF. Unparseable records are logged,
// counted, and skipped; a source error aborts the run.
func (r *Runner) Run() ([]Enriched, error) {
	var rows []Enriched
	for {
		rec, err := r.src.Record()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "getting record from source")
		}
		r.Stats.Count("sourced", 1, 1)
		emp, err := r.parser.Parse(rec)
		if err != nil {
			log.Printf("couldn't parse record %v, err: %v", rec, err)
			r.Stats.Count("parseerrors", 1, 1)
			continue
		}
		enr, ok := r.trans.Apply(emp)
		if !ok {
			r.Stats.Count("filtered", 1, 1)
			continue
		}
		r.Stats.Count("kept", 1, 1)
		rows = append(rows, enr)
	}
	return rows, nil
}
