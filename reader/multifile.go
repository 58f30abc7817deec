package reader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vegasq/playcat/table"
)

// maxFiles limits a single discovery to prevent resource exhaustion.
const maxFiles = 1000

var trailingNumber = regexp.MustCompile(`(\d+)\D*$`)

// Discover returns the files under dir matching the doublestar pattern
// (e.g. "StreamingHistory*.json" or "**/*.json.gz"), ordered by numeric
// suffix. Directories are skipped.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("file pattern is required (e.g., StreamingHistory*.json)")
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(absPath, pattern))
	if err != nil {
		return nil, fmt.Errorf("pattern matching failed: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, match)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files match pattern %s in %s", pattern, dir)
	}
	if len(files) > maxFiles {
		return nil, fmt.Errorf("pattern matched too many files (%d), maximum is %d", len(files), maxFiles)
	}

	SortByNumericSuffix(files)
	return files, nil
}

// NumericSuffix returns the last run of digits in the file name, ignoring
// the extension, e.g. 3 for "Streaming_History_Audio_2019-2020_3.json".
// ok is false when the name has no digits.
func NumericSuffix(path string) (n int, ok bool) {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	m := trailingNumber.FindStringSubmatch(base)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortByNumericSuffix orders paths by NumericSuffix, so StreamingHistory10
// follows StreamingHistory9. Names without digits sort first, and ties fall
// back to lexical order.
func SortByNumericSuffix(paths []string) {
	slices.SortStableFunc(paths, func(a, b string) int {
		na, okA := NumericSuffix(a)
		nb, okB := NumericSuffix(b)
		switch {
		case okA != okB:
			if okA {
				return 1
			}
			return -1
		case na != nb:
			return na - nb
		default:
			return strings.Compare(a, b)
		}
	})
}

// Options controls ReadFiles.
type Options struct {
	// Workers bounds how many files are parsed at once (0 = runtime.NumCPU()).
	Workers int
	// Logger receives per-file progress; nil disables logging.
	Logger *slog.Logger
}

// ReadFiles parses paths on a pool of workers, each file into a private
// table, and concatenates the results in the order of paths.
//
// The first failure fails the whole job and files not yet started are
// skipped; no partial table is returned.
func ReadFiles(paths []string, schema Schema, opts Options) (*table.Table, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := make([]*table.Table, len(paths))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	for range min(workers, len(paths)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Once one file has failed the rest are drained unread.
				if failed() {
					continue
				}

				path := paths[i]
				start := time.Now()
				tbl, err := ReadFile(path, schema)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("failed to read %s: %w", path, err)
					}
					mu.Unlock()
					continue
				}
				logger.Debug("file parsed",
					"file", filepath.Base(path),
					"entries", tbl.Len(),
					"elapsed", time.Since(start))
				results[i] = tbl
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	merged, err := schema.NewTable()
	if err != nil {
		return nil, err
	}
	return merged.Concat(results...)
}

// ReadMultipleFiles reads all files matching a glob pattern with schema.
//
// A pattern without wildcards reads a single file. Matches are merged in
// numeric-suffix order.
func ReadMultipleFiles(pattern string, schema Schema, opts Options) (*table.Table, error) {
	// Check if pattern contains glob wildcards
	if !strings.ContainsAny(pattern, "*?[]{}") {
		return ReadFile(pattern, schema)
	}

	dir, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
	files, err := Discover(filepath.FromSlash(dir), rel)
	if err != nil {
		return nil, err
	}
	return ReadFiles(files, schema, opts)
}
