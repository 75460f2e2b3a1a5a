package logfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"ufwlog/pkg/parser"
)

// Find returns the full paths of files in dir whose names match the given
// pattern at the start of the name, sorted for deterministic ordering.
// The default pattern matches the standard ufw.log rotation family
// (ufw.log, ufw.log.1, ufw.log.2.gz, ...).
func Find(dir, pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var out []string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		// Anchored at the start of the name, like the conventional
		// log-rotation prefix match.
		if loc := re.FindStringIndex(de.Name()); loc != nil && loc[0] == 0 {
			out = append(out, filepath.Join(dir, de.Name()))
		}
	}

	sort.Strings(out)
	return out, nil
}

// Verify checks that path looks like a UFW log by parsing its first
// non-blank line. It reports an error for unreadable, empty, or
// foreign-format files.
func Verify(path string) error {
	r, closeReader, err := openReader(path)
	if err != nil {
		return err
	}
	defer closeReader()

	scanner := newLineScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		if _, err := parser.Parse(scanner.Text()); err != nil {
			return fmt.Errorf("first line: %w", err)
		}
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return errors.New("no log lines found")
}
