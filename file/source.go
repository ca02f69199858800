package file

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"

	"github.com/etldemo/edk"
	"github.com/etldemo/edk/json"
	"github.com/pkg/errors"
)

// Source is an edk.Source which reads json employee records from files on
// disk. This is the source the managed-execution input channel is wired to:
// point it at the channel directory and every staged file gets read.
type Source struct {
	rawSource *RawSource
	records   chan record
}

// NewSource gets a new file source which will read json data from a file or
// all files in a directory.
func NewSource(pathname string) (*Source, error) {
	rs, err := NewRawSource(pathname)
	if err != nil {
		return nil, errors.Wrap(err, "getting raw source")
	}
	s := &Source{
		rawSource: rs,
		records:   make(chan record, 100),
	}
	go s.run()
	return s, nil
}

func (s *Source) run() {
	src := json.NewSourceFromRawSource(s.rawSource)
	for {
		r := record{}
		r.data, r.err = src.Record()
		if r.err == io.EOF {
			break
		}
		s.records <- r
		if r.err != nil {
			break
		}
	}
	close(s.records)
}

// Record implements edk.Source returning a map[string]interface{} for each
// json object in the source files.
func (s *Source) Record() (interface{}, error) {
	rec, ok := <-s.records
	if !ok {
		return nil, io.EOF
	}
	return rec.data, rec.err
}

type record struct {
	data interface{}
	err  error
}

// RawSource hands out a reader per file under a path.
type RawSource struct {
	files   []string
	fileIdx *uint64
}

// NewRawSource returns a RawSource over the named file, or over every file
// in the named directory.
func NewRawSource(pathname string) (*RawSource, error) {
	fileIdx := uint64(0)
	s := &RawSource{
		fileIdx: &fileIdx,
	}
	info, err := os.Stat(pathname)
	if err != nil {
		return nil, errors.Wrap(err, "statting path")
	}
	if info.IsDir() {
		entries, err := os.ReadDir(pathname)
		if err != nil {
			return nil, errors.Wrap(err, "reading directory")
		}
		s.files = make([]string, 0, len(entries))
		for _, entry := range entries {
			s.files = append(s.files, path.Join(pathname, entry.Name()))
		}
	} else {
		s.files = []string{pathname}
	}
	return s, nil
}

type metaFile struct {
	*os.File
}

func (m *metaFile) Name() string {
	return filepath.Base(m.File.Name())
}

// NextReader implements edk.RawSource.
func (s *RawSource) NextReader() (edk.NamedReadCloser, error) {
	idx := atomic.AddUint64(s.fileIdx, 1) - 1
	if int(idx) >= len(s.files) {
		return nil, io.EOF
	}

	f, err := os.Open(s.files[idx])
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", s.files[idx])
	}
	return &metaFile{f}, nil
}
