// Package gen prints generated employee records as json lines, for seeding
// files, buckets, or topics that the other subcommands read back.
package gen

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/etldemo/edk"
	"github.com/etldemo/edk/fake"
	"github.com/pkg/errors"
)

// Main holds the options for generating fake employee data.
type Main struct {
	Seed int64  `help:"Random seed for generating data. -1 will use current nanosecond."`
	Num  uint64 `help:"Number of employees to generate. Must be positive."`

	out io.Writer
}

// NewMain returns a new Main writing to stdout.
func NewMain() *Main {
	return &Main{
		Seed: -1,
		Num:  1000,
		out:  os.Stdout,
	}
}

// SetOutput redirects the json lines away from stdout.
func (m *Main) SetOutput(w io.Writer) {
	m.out = w
}

// Run generates the employees and writes them as json lines.
func (m *Main) Run() error {
	if m.Num == 0 {
		return errors.New("number of employees must be positive")
	}
	seed := m.Seed
	if seed == -1 {
		seed = time.Now().UnixNano()
	}
	src := fake.NewEmployeeSource(seed, m.Num)
	w := bufio.NewWriter(m.out)
	enc := json.NewEncoder(w)
	for {
		rec, err := src.Record()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "getting record from source")
		}
		if err := enc.Encode(rec.(*edk.Employee)); err != nil {
			return errors.Wrap(err, "encoding employee")
		}
	}
	return errors.Wrap(w.Flush(), "flushing output")
}
