package edk

// Source is the interface for getting raw data one record at a time. Record
// returns io.EOF when the source is exhausted. Implementations of Source
// should be thread safe.
type Source interface {
	Record() (interface{}, error)
}

// Parser is the interface for turning raw records from a Source into
// Employees. Implementations of Parser should be thread safe.
type Parser interface {
	Parse(data interface{}) (*Employee, error)
}

// NamedReadCloser is an io.ReadCloser which also knows the name of the
// resource it reads (a file name, an S3 object key).
type NamedReadCloser interface {
	Read(p []byte) (n int, err error)
	Close() error
	Name() string
}

// RawSource hands out readers over a series of raw resources, io.EOF when
// there are no more.
type RawSource interface {
	NextReader() (NamedReadCloser, error)
}
