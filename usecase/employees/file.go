package employees

import (
	"os"

	"github.com/etldemo/edk/file"
	"github.com/pkg/errors"
)

// FileMain runs the job over line-delimited JSON employee records from a
// file or directory. With no path given it reads the managed-execution input
// channel (SM_CHANNEL_TRAINING).
type FileMain struct {
	Path        string `help:"File or directory of json employee records. Defaults to $SM_CHANNEL_TRAINING."`
	MinAge      int    `help:"Employees younger than this are dropped."`
	BucketWidth int    `help:"Width in years of the age histogram buckets."`
	Output      string `help:"Directory for the output files."`
	Format      string `help:"Output file format (parquet or avro)."`
	Ledger      string `help:"Path to a bolt file recording each run. Empty disables the ledger."`
	Verbose     bool   `help:"Enable debug logging and terminal stats."`
}

// NewFileMain returns a new FileMain.
func NewFileMain() *FileMain {
	return &FileMain{
		MinAge:      DefaultMinAge,
		BucketWidth: DefaultBucketWidth,
		Output:      DefaultOutput,
		Format:      "parquet",
	}
}

// Run runs the job over the file input.
func (m *FileMain) Run() error {
	path := m.Path
	if path == "" {
		path = os.Getenv("SM_CHANNEL_TRAINING")
	}
	if path == "" {
		return errors.New("no input path given and SM_CHANNEL_TRAINING is unset")
	}
	src, err := file.NewSource(path)
	if err != nil {
		return errors.Wrap(err, "getting file source")
	}
	job := newJob(m.MinAge, m.BucketWidth, m.Output, m.Format, m.Ledger, m.Verbose)
	return job.Run(src, "file", 0)
}
