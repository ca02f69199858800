// Package ledger records a row in a local bolt database for every pipeline
// run, so repeated demo runs can be compared after the fact.
package ledger

import (
	"encoding/binary"
	"encoding/json"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var runBucket = []byte("runs")

// Entry describes one completed pipeline run.
type Entry struct {
	Time      time.Time `json:"time"`
	Source    string    `json:"source"`
	Seed      int64     `json:"seed"`
	Sourced   int64     `json:"sourced"`
	Kept      int64     `json:"kept"`
	OutputDir string    `json:"output_dir"`
	Format    string    `json:"format"`
}

// Ledger is an append-only record of pipeline runs backed by bolt.
type Ledger struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the ledger database at filename.
func Open(filename string) (*Ledger, error) {
	db, err := bolt.Open(filename, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening db file '%v'", filename)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runBucket)
		return errors.Wrap(err, "creating runs bucket")
	})
	if err != nil {
		return nil, errors.Wrap(err, "ensuring bucket existence")
	}
	return &Ledger{db: db}, nil
}

// Record appends an entry to the ledger and returns its sequence number.
func (l *Ledger) Record(e Entry) (id uint64, err error) {
	val, err := json.Marshal(e)
	if err != nil {
		return 0, errors.Wrap(err, "marshaling entry")
	}
	err = l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(runBucket)
		id, err = b.NextSequence()
		if err != nil {
			return errors.Wrap(err, "getting next sequence")
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, id)
		return errors.Wrap(b.Put(key, val), "putting entry")
	})
	if err != nil {
		return 0, errors.Wrap(err, "recording run")
	}
	return id, nil
}

// Runs returns every recorded entry in the order it was recorded.
func (l *Ledger) Runs() ([]Entry, error) {
	var entries []Entry
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runBucket).ForEach(func(k, v []byte) error {
			e := Entry{}
			if err := json.Unmarshal(v, &e); err != nil {
				return errors.Wrapf(err, "unmarshaling entry %d", binary.BigEndian.Uint64(k))
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading runs")
	}
	return entries, nil
}

// Close syncs and closes the underlying database.
func (l *Ledger) Close() error {
	err := l.db.Sync()
	if err != nil {
		return errors.Wrap(err, "syncing db")
	}
	return l.db.Close()
}
