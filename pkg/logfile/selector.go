package logfile

import (
	"fmt"

	"ufwlog/pkg/filter"
	"ufwlog/pkg/parser"
)

// Selector picks a subset of a collection's entries. The variants are
// explicit: At for a single position, Span for a contiguous range, Where
// and WhereAll for predicate selection. Get concatenates the results of
// several selectors in order.
type Selector interface {
	selectFrom(f *LogFile) ([]*parser.Entry, error)
}

// Get applies each selector in turn and concatenates the results in
// selector order. Duplicates are kept. The first failing selector aborts
// with its error.
func (f *LogFile) Get(sels ...Selector) ([]*parser.Entry, error) {
	out := make([]*parser.Entry, 0)
	for _, sel := range sels {
		part, err := sel.selectFrom(f)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// At selects the single entry at position i.
func At(i int) Selector {
	return indexSelector(i)
}

type indexSelector int

func (s indexSelector) selectFrom(f *LogFile) ([]*parser.Entry, error) {
	i := int(s)
	if i < 0 || i >= len(f.entries) {
		return nil, &IndexOutOfRangeError{Index: i, Len: len(f.entries)}
	}
	return []*parser.Entry{f.entries[i]}, nil
}

// Span selects the contiguous entries at positions start..end-1.
func Span(start, end int) Selector {
	return spanSelector{start: start, end: end}
}

type spanSelector struct {
	start, end int
}

func (s spanSelector) selectFrom(f *LogFile) ([]*parser.Entry, error) {
	if s.start < 0 || s.start > len(f.entries) {
		return nil, &IndexOutOfRangeError{Index: s.start, Len: len(f.entries)}
	}
	if s.end < s.start || s.end > len(f.entries) {
		return nil, &IndexOutOfRangeError{Index: s.end, Len: len(f.entries)}
	}
	return f.entries[s.start:s.end], nil
}

// Where selects the entries matching a single predicate.
func Where(p filter.Predicate) Selector {
	return whereSelector{preds: []filter.Predicate{p}}
}

// WhereAll selects the entries matching every given predicate.
func WhereAll(preds ...filter.Predicate) Selector {
	return whereSelector{preds: preds}
}

type whereSelector struct {
	preds []filter.Predicate
}

func (s whereSelector) selectFrom(f *LogFile) ([]*parser.Entry, error) {
	return f.Search(s.preds...), nil
}

// IndexOutOfRangeError reports a positional selector outside the entry
// sequence bounds.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range with length %d", e.Index, e.Len)
}
