package file_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/etldemo/edk/file"
)

func TestFileSourceSingleFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "emps.json")
	content := `{"id": 1, "name": "Alice", "department": "Engineering", "age": 34, "salary": 87000}
{"id": 2, "name": "Bob", "department": "Sales", "age": 41, "salary": 56000}
`
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	src, err := file.NewSource(name)
	if err != nil {
		t.Fatalf("getting source: %v", err)
	}

	rec, err := src.Record()
	if err != nil {
		t.Fatalf("getting first record: %v", err)
	}
	recmap := rec.(map[string]interface{})
	if recmap["name"] != "Alice" {
		t.Fatalf("wrong first record: %v", recmap)
	}

	rec, err = src.Record()
	if err != nil {
		t.Fatalf("getting second record: %v", err)
	}
	recmap = rec.(map[string]interface{})
	if recmap["name"] != "Bob" {
		t.Fatalf("wrong second record: %v", recmap)
	}

	if _, err := src.Record(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestFileSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"name": "Alice"}`), 0644); err != nil {
		t.Fatalf("writing a.json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"name": "Bob"}`), 0644); err != nil {
		t.Fatalf("writing b.json: %v", err)
	}

	src, err := file.NewSource(dir)
	if err != nil {
		t.Fatalf("getting source: %v", err)
	}

	names := make(map[string]bool)
	for {
		rec, err := src.Record()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("getting record: %v", err)
		}
		names[rec.(map[string]interface{})["name"].(string)] = true
	}
	if !names["Alice"] || !names["Bob"] {
		t.Fatalf("missing records: %v", names)
	}
}

func TestFileSourceMissing(t *testing.T) {
	if _, err := file.NewSource("/does/not/exist"); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
