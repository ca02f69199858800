package employees

import (
	"github.com/etldemo/edk/aws/s3"
	"github.com/pkg/errors"
)

// S3Main runs the job over line-delimited JSON employee records stored in an
// S3 bucket.
type S3Main struct {
	Bucket      string `help:"S3 bucket to read employee records from."`
	Prefix      string `help:"Only process objects with this key prefix."`
	Region      string `help:"AWS region of the bucket."`
	MinAge      int    `help:"Employees younger than this are dropped."`
	BucketWidth int    `help:"Width in years of the age histogram buckets."`
	Output      string `help:"Directory for the output files."`
	Format      string `help:"Output file format (parquet or avro)."`
	Ledger      string `help:"Path to a bolt file recording each run. Empty disables the ledger."`
	Verbose     bool   `help:"Enable debug logging and terminal stats."`
}

// NewS3Main returns a new S3Main.
func NewS3Main() *S3Main {
	return &S3Main{
		Region:      "us-east-1",
		MinAge:      DefaultMinAge,
		BucketWidth: DefaultBucketWidth,
		Output:      DefaultOutput,
		Format:      "parquet",
	}
}

// Run runs the job over the S3 input.
func (m *S3Main) Run() error {
	if m.Bucket == "" {
		return errors.New("no s3 bucket given")
	}
	src, err := s3.NewSource(s3.OptSrcBucket(m.Bucket), s3.OptSrcRegion(m.Region), s3.OptSrcPrefix(m.Prefix))
	if err != nil {
		return errors.Wrap(err, "getting s3 source")
	}
	job := newJob(m.MinAge, m.BucketWidth, m.Output, m.Format, m.Ledger, m.Verbose)
	return job.Run(src, "s3", 0)
}
