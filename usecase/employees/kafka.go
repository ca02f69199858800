package employees

import (
	"github.com/etldemo/edk/kafka"
	"github.com/pkg/errors"
)

// KafkaMain runs the job over json employee messages consumed from kafka.
type KafkaMain struct {
	Hosts       []string `help:"Comma separated list of kafka hosts."`
	Topics      []string `help:"Kafka topics to consume."`
	Group       string   `help:"Kafka consumer group."`
	MaxMsgs     int      `help:"Stop after this many messages. 0 consumes forever."`
	MinAge      int      `help:"Employees younger than this are dropped."`
	BucketWidth int      `help:"Width in years of the age histogram buckets."`
	Output      string   `help:"Directory for the output files."`
	Format      string   `help:"Output file format (parquet or avro)."`
	Ledger      string   `help:"Path to a bolt file recording each run. Empty disables the ledger."`
	Verbose     bool     `help:"Enable debug logging and terminal stats."`
}

// NewKafkaMain returns a new KafkaMain.
func NewKafkaMain() *KafkaMain {
	return &KafkaMain{
		Hosts:       []string{"localhost:9092"},
		Topics:      []string{"employees"},
		Group:       "group0",
		MaxMsgs:     10000,
		MinAge:      DefaultMinAge,
		BucketWidth: DefaultBucketWidth,
		Output:      DefaultOutput,
		Format:      "parquet",
	}
}

// Run runs the job over the kafka input.
func (m *KafkaMain) Run() error {
	src := kafka.NewSource()
	src.Hosts = m.Hosts
	src.Topics = m.Topics
	src.Group = m.Group
	src.MaxMsgs = m.MaxMsgs
	if err := src.Open(); err != nil {
		return errors.Wrap(err, "opening kafka source")
	}
	defer src.Close()
	job := newJob(m.MinAge, m.BucketWidth, m.Output, m.Format, m.Ledger, m.Verbose)
	return job.Run(src, "kafka", 0)
}
