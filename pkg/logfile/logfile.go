// Package logfile loads UFW log files into an ordered, queryable
// collection of parsed entries.
package logfile

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"ufwlog/pkg/filter"
	"ufwlog/pkg/parser"
)

// Well-known Ubuntu locations for UFW logs.
const (
	DefaultDir     = "/var/log/"
	DefaultPath    = "/var/log/ufw.log"
	DefaultPattern = "^ufw.*"
)

// LogFile is an in-memory, file-backed ordered collection of log entries.
//
// The whole source file is read and parsed before Open returns; there is no
// streaming or incremental mode. A LogFile is not safe for concurrent use
// with Close, since Close drops the entry sequence.
type LogFile struct {
	path    string
	entries []*parser.Entry
}

// Option adjusts how Open loads a file.
type Option func(*loadOptions)

type loadOptions struct {
	skipMalformed bool
}

// SkipMalformed makes Open skip lines that fail to parse instead of
// aborting the whole load. The default is strict: the first malformed line
// fails Open with the line number wrapped into the error.
func SkipMalformed() Option {
	return func(o *loadOptions) {
		o.skipMalformed = true
	}
}

// Open reads and parses every line of the log file at path. Paths ending in
// .gz are decompressed transparently, so rotated archives load directly.
//
// UFW lines carry no year, so after parsing, every entry's year is set to
// the file's last-modified year; month, day, and time of day are untouched.
func Open(path string, opts ...Option) (*LogFile, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	r, closeReader, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer closeReader()

	lf := &LogFile{path: path}

	scanner := newLineScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		entry, err := parser.Parse(scanner.Text())
		if err != nil {
			if lo.skipMalformed {
				continue
			}
			return nil, fmt.Errorf("parsing %s line %d: %w", path, lineNum, err)
		}
		lf.entries = append(lf.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	lf.correctYears(info.ModTime().Year())

	return lf, nil
}

// correctYears is the one post-construction mutation entries undergo.
func (f *LogFile) correctYears(year int) {
	for _, e := range f.entries {
		t := e.EventTime
		e.EventTime = time.Date(year, t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
}

// Path returns the source file path.
func (f *LogFile) Path() string {
	return f.path
}

// Len returns the number of held entries.
func (f *LogFile) Len() int {
	return len(f.entries)
}

// Search returns every entry for which all the given predicates are true,
// in file order. With no predicates it returns everything.
func (f *LogFile) Search(preds ...filter.Predicate) []*parser.Entry {
	out := make([]*parser.Entry, 0)
	for _, e := range f.entries {
		if matchesAll(e, preds) {
			out = append(out, e)
		}
	}
	return out
}

func matchesAll(e *parser.Entry, preds []filter.Predicate) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

// All returns a restartable iterator over the entries in file order. The
// sequence is a snapshot: releasing the collection afterwards does not
// affect an iterator already obtained.
func (f *LogFile) All() iter.Seq[*parser.Entry] {
	entries := f.entries
	return func(yield func(*parser.Entry) bool) {
		for _, e := range entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Close drops the held entries so the memory can be reclaimed, which is
// useful when bracketing work on large archives:
//
//	lf, err := logfile.Open(path)
//	if err != nil { ... }
//	defer lf.Close()
//
// The collection stays usable and reads as empty. Close is idempotent and
// never returns an error.
func (f *LogFile) Close() error {
	f.entries = nil
	return nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return scanner
}

// openReader opens path for line scanning, layering gzip decompression on
// top for .gz archives.
func openReader(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return file, file.Close, nil
	}

	zr, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("reading gzip header of %s: %w", path, err)
	}
	closeBoth := func() error {
		zerr := zr.Close()
		if err := file.Close(); err != nil {
			return err
		}
		return zerr
	}
	return zr, closeBoth, nil
}
