// Package filter provides a composable predicate algebra for selecting log
// entries. A Field names an entry attribute; its comparison builders return
// Predicate values that can be combined with boolean connectives and applied
// any number of times.
package filter

import (
	"fmt"
	"regexp"
)

// Valuer exposes named attributes to the filter algebra. parser.Entry
// implements it; tests can use lightweight stubs.
type Valuer interface {
	FieldByName(name string) (any, bool)
}

// Predicate is a pure boolean test over a value. Predicates hold no mutable
// state and are safe to invoke concurrently.
type Predicate func(v any) bool

// And returns a predicate that is true iff both p and q are true. Both
// sides are evaluated on every call.
func (p Predicate) And(q Predicate) Predicate {
	return func(v any) bool {
		left, right := p(v), q(v)
		return left && right
	}
}

// Or returns a predicate that is true iff at least one of p and q is true.
// Both sides are evaluated on every call.
func (p Predicate) Or(q Predicate) Predicate {
	return func(v any) bool {
		left, right := p(v), q(v)
		return left || right
	}
}

// Add is an alias for Or: the union of what each predicate selects.
func (p Predicate) Add(q Predicate) Predicate {
	return p.Or(q)
}

// Subtract returns a predicate that is true iff p is true and q is false:
// the set difference of what the predicates select.
func (p Predicate) Subtract(q Predicate) Predicate {
	return func(v any) bool {
		left, right := p(v), q(v)
		return left && !right
	}
}

// Field is an immutable binding to an attribute name. The zero value is
// unbound and compares the whole input value instead of an attribute.
type Field struct {
	name string
}

// NewField returns a Field bound to the given attribute name.
func NewField(name string) Field {
	return Field{name: name}
}

// Name returns the bound attribute name, or the empty string if unbound.
func (f Field) Name() string {
	return f.name
}

// Rebind names an unbound Field. A Field that already carries a name cannot
// be renamed; Rebind then fails with an ImmutableFieldError identifying it.
func (f *Field) Rebind(name string) error {
	if f.name != "" {
		return &ImmutableFieldError{Field: f.name}
	}
	f.name = name
	return nil
}

// extract resolves the value the field's predicates compare: the named
// attribute when bound, the input itself when not.
func (f Field) extract(v any) (any, bool) {
	if f.name == "" {
		return v, true
	}
	val, ok := v.(Valuer)
	if !ok {
		return nil, false
	}
	return val.FieldByName(f.name)
}

// Equals returns a predicate that is true iff the field's value equals want.
func (f Field) Equals(want any) Predicate {
	return func(v any) bool {
		got, ok := f.extract(v)
		return ok && equal(got, want)
	}
}

// NotEquals returns a predicate that is true iff the field's value differs
// from want.
func (f Field) NotEquals(want any) Predicate {
	return func(v any) bool {
		got, ok := f.extract(v)
		return ok && !equal(got, want)
	}
}

// LessThan returns a predicate that is true iff the field's value orders
// strictly below want. Incomparable operands yield false.
func (f Field) LessThan(want any) Predicate {
	return f.ordered(want, func(c int) bool { return c < 0 })
}

// GreaterThan returns a predicate that is true iff the field's value orders
// strictly above want. Incomparable operands yield false.
func (f Field) GreaterThan(want any) Predicate {
	return f.ordered(want, func(c int) bool { return c > 0 })
}

// AtMost returns a predicate for "less than or equal".
func (f Field) AtMost(want any) Predicate {
	return f.ordered(want, func(c int) bool { return c <= 0 })
}

// AtLeast returns a predicate for "greater than or equal".
func (f Field) AtLeast(want any) Predicate {
	return f.ordered(want, func(c int) bool { return c >= 0 })
}

// Matches returns a predicate that is true iff re matches anywhere within
// the string form of the field's value.
func (f Field) Matches(re *regexp.Regexp) Predicate {
	return func(v any) bool {
		got, ok := f.extract(v)
		if !ok {
			return false
		}
		return re.MatchString(stringify(got))
	}
}

func (f Field) ordered(want any, keep func(int) bool) Predicate {
	return func(v any) bool {
		got, ok := f.extract(v)
		if !ok {
			return false
		}
		c, orderable := compare(got, want)
		return orderable && keep(c)
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
