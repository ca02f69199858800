package employees

import (
	"time"

	"github.com/etldemo/edk/fake"
	"github.com/pkg/errors"
)

// Main holds the options for generating fake employees and running the
// processing job over them. This is the default demo entrypoint: no external
// input needed.
type Main struct {
	Seed        int64  `help:"Random seed for generating data. -1 will use current nanosecond."`
	Num         uint64 `help:"Number of employees to generate. Must be positive."`
	MinAge      int    `help:"Employees younger than this are dropped."`
	BucketWidth int    `help:"Width in years of the age histogram buckets."`
	Output      string `help:"Directory for the output files."`
	Format      string `help:"Output file format (parquet or avro)."`
	Ledger      string `help:"Path to a bolt file recording each run. Empty disables the ledger."`
	Verbose     bool   `help:"Enable debug logging and terminal stats."`
}

// NewMain returns a new Main.
func NewMain() *Main {
	return &Main{
		Seed:        -1,
		Num:         1000,
		MinAge:      DefaultMinAge,
		BucketWidth: DefaultBucketWidth,
		Output:      DefaultOutput,
		Format:      "parquet",
	}
}

// Run generates the employees and runs the job.
func (m *Main) Run() error {
	if m.Num == 0 {
		return errors.New("number of employees must be positive")
	}
	seed := m.Seed
	if seed == -1 {
		seed = time.Now().UnixNano()
	}
	src := fake.NewEmployeeSource(seed, m.Num)
	job := newJob(m.MinAge, m.BucketWidth, m.Output, m.Format, m.Ledger, m.Verbose)
	return job.Run(src, "fake", seed)
}
