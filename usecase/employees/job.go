// Package employees implements the demo employee processing job: filter and
// enrich a stream of employee records, tabulate them, aggregate by
// department and age bucket, and write the three result tables as columnar
// files.
package employees

import (
	"log"
	"os"
	"time"

	"github.com/etldemo/edk"
	"github.com/etldemo/edk/ledger"
	"github.com/etldemo/edk/output"
	"github.com/etldemo/edk/table"
	"github.com/etldemo/edk/termstat"
	"github.com/pkg/errors"
)

// Defaults shared by every employees subcommand.
const (
	DefaultMinAge      = 25
	DefaultBucketWidth = 10
	DefaultOutput      = "data/output"
)

// Job runs the processing and output stages against any source. The source
// subcommands differ only in how they construct the edk.Source they hand to
// Run.
type Job struct {
	MinAge      int
	BucketWidth int
	OutputDir   string
	Format      output.Format
	LedgerPath  string

	Stats edk.Statter
	Log   edk.Logger
}

func newJob(minAge, bucketWidth int, outputDir, format, ledgerPath string, verbose bool) *Job {
	j := &Job{
		MinAge:      minAge,
		BucketWidth: bucketWidth,
		OutputDir:   outputDir,
		Format:      output.Format(format),
		LedgerPath:  ledgerPath,
		Stats:       edk.NopStatter{},
		Log:         edk.StdLogger{Logger: log.New(os.Stderr, "", log.LstdFlags)},
	}
	if verbose {
		j.Stats = termstat.NewCollector(os.Stderr)
		j.Log = edk.VerboseLogger{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	}
	return j
}

// Run drains the source through the pipeline and writes the output tables.
// The seed is only recorded in the run ledger; sources which don't generate
// data pass 0.
func (j *Job) Run(src edk.Source, sourceName string, seed int64) error {
	if j.BucketWidth <= 0 {
		return errors.Errorf("bucket width must be positive, got %d", j.BucketWidth)
	}
	if os.Getenv("SM_TRAINING_ENV") != "" {
		j.Log.Printf("running in managed training mode")
	}
	// The managed platform dictates where output goes unless the operator
	// said otherwise.
	if dir := os.Getenv("SM_OUTPUT_DATA_DIR"); dir != "" && j.OutputDir == DefaultOutput {
		j.OutputDir = dir
	}
	w := &output.Writer{Dir: j.OutputDir, Format: j.Format}
	if err := w.Validate(); err != nil {
		return errors.Wrap(err, "validating output config")
	}

	runner := edk.NewRunner(src, edk.NewEmployeeParser(), &edk.Transform{MinAge: j.MinAge})
	counts := &countingStats{Statter: j.Stats}
	runner.Stats = counts
	rows, err := runner.Run()
	if err != nil {
		return errors.Wrap(err, "running pipeline")
	}
	if len(rows) == 0 {
		j.Log.Printf("no records survived the filter, writing empty tables")
	}

	sum := edk.Summarize(rows)
	j.Log.Printf("processed %d employees (%d sourced, %d dropped), total payroll %.2f",
		sum.Headcount, counts.sourced, counts.sourced-int64(sum.Headcount), sum.TotalPayroll)

	tbl := table.New(rows)
	depts := tbl.ByDepartment()
	ages, err := tbl.ByAgeBucket(j.BucketWidth)
	if err != nil {
		return errors.Wrap(err, "aggregating by age bucket")
	}
	j.Log.Debugf("aggregated %d departments, %d age buckets", len(depts), len(ages))

	if err := w.WriteAll(tbl, depts, ages); err != nil {
		return errors.Wrap(err, "writing output")
	}
	j.Log.Printf("wrote %d rows to %s (%s)", tbl.Len(), j.OutputDir, j.Format)

	if j.LedgerPath != "" {
		if err := j.record(sourceName, seed, counts.sourced, int64(tbl.Len())); err != nil {
			return errors.Wrap(err, "recording run")
		}
	}
	return nil
}

// countingStats forwards to the wrapped Statter while remembering the totals
// the run ledger wants.
type countingStats struct {
	edk.Statter
	sourced int64
}

func (c *countingStats) Count(name string, value int64, rate float64, tags ...string) {
	if name == "sourced" {
		c.sourced += value
	}
	c.Statter.Count(name, value, rate, tags...)
}

func (j *Job) record(sourceName string, seed, sourced, kept int64) error {
	l, err := ledger.Open(j.LedgerPath)
	if err != nil {
		return errors.Wrap(err, "opening ledger")
	}
	defer l.Close()
	_, err = l.Record(ledger.Entry{
		Time:      time.Now(),
		Source:    sourceName,
		Seed:      seed,
		Sourced:   sourced,
		Kept:      kept,
		OutputDir: j.OutputDir,
		Format:    string(j.Format),
	})
	return err
}
