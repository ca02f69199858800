package employees

import (
	"github.com/etldemo/edk/csv"
	"github.com/pkg/errors"
)

// CSVMain runs the job over employee records from CSV files or URLs.
type CSVMain struct {
	URLs        []string `help:"Comma separated list of CSV files or URLs to process."`
	Concurrency int      `help:"Number of files to fetch simultaneously."`
	MinAge      int      `help:"Employees younger than this are dropped."`
	BucketWidth int      `help:"Width in years of the age histogram buckets."`
	Output      string   `help:"Directory for the output files."`
	Format      string   `help:"Output file format (parquet or avro)."`
	Ledger      string   `help:"Path to a bolt file recording each run. Empty disables the ledger."`
	Verbose     bool     `help:"Enable debug logging and terminal stats."`
}

// NewCSVMain returns a new CSVMain.
func NewCSVMain() *CSVMain {
	return &CSVMain{
		Concurrency: 1,
		MinAge:      DefaultMinAge,
		BucketWidth: DefaultBucketWidth,
		Output:      DefaultOutput,
		Format:      "parquet",
	}
}

// Run runs the job over the CSV input.
func (m *CSVMain) Run() error {
	if len(m.URLs) == 0 {
		return errors.New("no csv files or urls given")
	}
	src := csv.NewSource(csv.WithURLs(m.URLs), csv.WithConcurrency(m.Concurrency))
	job := newJob(m.MinAge, m.BucketWidth, m.Output, m.Format, m.Ledger, m.Verbose)
	return job.Run(src, "csv", 0)
}
