package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vegasq/playcat/table"
)

// maxLineSize bounds a single export line.
const maxLineSize = 1024 * 1024

// ParseError reports a record that could not be converted, with the
// location of the line that completed it.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader reads one listening-history export into a table.
//
// It keeps the OS file handle so Close can release it.
type Reader struct {
	file   *os.File
	path   string
	schema Schema
}

// NewReader opens the export at path for reading with schema.
//
// Example:
//
//	r, err := NewReader("StreamingHistory0.json", Narrow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewReader(path string, schema Schema) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		file:   file,
		path:   path,
		schema: schema,
	}, nil
}

// ReadAll reads every record of the file into a new table.
//
// Compressed files (gzip, bzip2, xz) are decompressed on the fly. A record
// that fails to convert aborts the read with a *ParseError; a trailing
// incomplete record is dropped silently.
func (r *Reader) ReadAll() (*table.Table, error) {
	src, closer, err := decompress(r.file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	defer func() { _ = closer.Close() }()

	tbl, err := ReadTable(src, r.schema)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = filepath.Base(r.path)
		}
		return nil, err
	}
	return tbl, nil
}

// Close releases the underlying file. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadTable runs the extract → build pipeline over src.
func ReadTable(src io.Reader, schema Schema) (*table.Table, error) {
	builder, err := NewBuilder(schema)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		token, ok := Extract(scanner.Text())
		if !ok {
			continue
		}
		if err := builder.Append(token); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", line+1, err)
	}

	return builder.Table(), nil
}

// ReadFile is a convenience wrapper around NewReader and ReadAll.
func ReadFile(path string, schema Schema) (*table.Table, error) {
	r, err := NewReader(path, schema)
	if err != nil {
		return nil, err
	}

	tbl, readErr := r.ReadAll()
	closeErr := r.Close()

	// Preserve the first error encountered
	if readErr != nil {
		return nil, readErr
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	return tbl, nil
}
