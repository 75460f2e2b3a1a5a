package filter

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

// stubEvent stands in for a parsed entry in algebra tests.
type stubEvent map[string]any

func (s stubEvent) FieldByName(name string) (any, bool) {
	v, ok := s[name]
	return v, ok
}

func TestField_RebindIsImmutable(t *testing.T) {
	f := NewField("DPT")

	err := f.Rebind("SPT")
	if err == nil {
		t.Fatal("Rebind() error = nil, want ImmutableFieldError")
	}
	var immutable *ImmutableFieldError
	if !errors.As(err, &immutable) {
		t.Fatalf("error type = %T, want *ImmutableFieldError", err)
	}
	if immutable.Field != "DPT" {
		t.Errorf("error Field = %q, want %q", immutable.Field, "DPT")
	}
	if f.Name() != "DPT" {
		t.Errorf("Name() = %q after failed Rebind, want %q", f.Name(), "DPT")
	}
}

func TestField_RebindBindsOnce(t *testing.T) {
	var f Field
	if err := f.Rebind("SRC"); err != nil {
		t.Fatalf("Rebind() on unbound field error = %v", err)
	}
	if f.Name() != "SRC" {
		t.Errorf("Name() = %q, want %q", f.Name(), "SRC")
	}
	if err := f.Rebind("DST"); err == nil {
		t.Error("second Rebind() error = nil, want ImmutableFieldError")
	}
}

func TestField_Equality(t *testing.T) {
	event := stubEvent{"DPT": 25565, "PROTO": "TCP", "uptime": 123.45}

	tests := []struct {
		name string
		pred Predicate
		want bool
	}{
		{"int equals", NewField("DPT").Equals(25565), true},
		{"int equals mismatch", NewField("DPT").Equals(22), false},
		{"int equals float literal", NewField("DPT").Equals(25565.0), true},
		{"string equals", NewField("PROTO").Equals("TCP"), true},
		{"not equals", NewField("PROTO").NotEquals("UDP"), true},
		{"not equals same", NewField("PROTO").NotEquals("TCP"), false},
		{"float equals", NewField("uptime").Equals(123.45), true},
		{"unknown field", NewField("NOPE").Equals("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(event); got != tt.want {
				t.Errorf("pred(event) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField_Ordering(t *testing.T) {
	event := stubEvent{
		"DPT":            443,
		"PROTO":          "TCP",
		"uptime":         99.5,
		"event_datetime": time.Date(2024, 9, 21, 10, 15, 32, 0, time.UTC),
	}
	earlier := time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		pred Predicate
		want bool
	}{
		{"less than", NewField("DPT").LessThan(1024), true},
		{"less than equal value", NewField("DPT").LessThan(443), false},
		{"greater than", NewField("DPT").GreaterThan(80), true},
		{"greater than itself", NewField("DPT").GreaterThan(443), false},
		{"at most boundary", NewField("DPT").AtMost(443), true},
		{"at least boundary", NewField("DPT").AtLeast(443), true},
		{"at least above", NewField("DPT").AtLeast(444), false},
		{"int field float literal", NewField("DPT").LessThan(443.5), true},
		{"float field int literal", NewField("uptime").GreaterThan(99), true},
		{"string ordering", NewField("PROTO").GreaterThan("ABC"), true},
		{"time after", NewField("event_datetime").GreaterThan(earlier), true},
		{"time at most", NewField("event_datetime").AtMost(earlier), false},
		{"incomparable types", NewField("PROTO").LessThan(42), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(event); got != tt.want {
				t.Errorf("pred(event) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField_Matches(t *testing.T) {
	event := stubEvent{"SRC": "192.168.1.40", "DPT": 25565}

	if !NewField("SRC").Matches(regexp.MustCompile(`^192\.168\.`))(event) {
		t.Error("anchored prefix match = false, want true")
	}
	if !NewField("SRC").Matches(regexp.MustCompile(`1\.40`))(event) {
		t.Error("interior match = false, want true")
	}
	if NewField("SRC").Matches(regexp.MustCompile(`^10\.`))(event) {
		t.Error("non-matching pattern = true, want false")
	}
	// Non-string fields are matched against their printed form.
	if !NewField("DPT").Matches(regexp.MustCompile(`^255`))(event) {
		t.Error("numeric field string match = false, want true")
	}
}

func TestField_UnboundComparesWholeValue(t *testing.T) {
	var whole Field
	if !whole.Equals(25565)(25565) {
		t.Error("unbound Equals on equal value = false, want true")
	}
	if whole.Equals(25565)(80) {
		t.Error("unbound Equals on different value = true, want false")
	}
	if !whole.LessThan("b")("a") {
		t.Error("unbound LessThan = false, want true")
	}
}

func TestPredicate_ConnectiveLaws(t *testing.T) {
	event := stubEvent{"DPT": 25565, "PROTO": "TCP"}

	preds := []struct {
		name string
		pred Predicate
	}{
		{"true A", NewField("DPT").Equals(25565)},
		{"false A", NewField("DPT").Equals(80)},
		{"true B", NewField("PROTO").Equals("TCP")},
		{"false B", NewField("PROTO").Equals("UDP")},
	}

	for _, p := range preds {
		for _, q := range preds {
			pv, qv := p.pred(event), q.pred(event)

			if got := p.pred.And(q.pred)(event); got != (pv && qv) {
				t.Errorf("(%s AND %s) = %v, want %v", p.name, q.name, got, pv && qv)
			}
			if got := p.pred.Or(q.pred)(event); got != (pv || qv) {
				t.Errorf("(%s OR %s) = %v, want %v", p.name, q.name, got, pv || qv)
			}
			if got := p.pred.Add(q.pred)(event); got != (pv || qv) {
				t.Errorf("(%s ADD %s) = %v, want %v", p.name, q.name, got, pv || qv)
			}
			if got := p.pred.Subtract(q.pred)(event); got != (pv && !qv) {
				t.Errorf("(%s SUBTRACT %s) = %v, want %v", p.name, q.name, got, pv && !qv)
			}
		}
	}
}

func TestPredicate_Associativity(t *testing.T) {
	event := stubEvent{"DPT": 25565, "PROTO": "TCP", "IN": "eth0"}

	a := NewField("DPT").Equals(25565)
	b := NewField("PROTO").Equals("UDP")
	c := NewField("IN").Equals("eth0")

	if a.And(b).And(c)(event) != a.And(b.And(c))(event) {
		t.Error("AND is not associative")
	}
	if a.Or(b).Or(c)(event) != a.Or(b.Or(c))(event) {
		t.Error("OR is not associative")
	}
}

func TestPredicate_CombinationDoesNotMutate(t *testing.T) {
	event := stubEvent{"DPT": 25565}

	p := NewField("DPT").Equals(25565)
	q := NewField("DPT").Equals(80)
	_ = p.And(q)
	_ = p.Subtract(q)

	if !p(event) {
		t.Error("p changed after combination")
	}
	if q(event) {
		t.Error("q changed after combination")
	}
}

func TestPresets(t *testing.T) {
	if DPT.Name() != "DPT" {
		t.Errorf("DPT.Name() = %q, want %q", DPT.Name(), "DPT")
	}
	if EventTime.Name() != "event_datetime" {
		t.Errorf("EventTime.Name() = %q", EventTime.Name())
	}

	f, ok := FieldByName("SYN_URGP")
	if !ok {
		t.Fatal("FieldByName(SYN_URGP) ok = false")
	}
	if f.Name() != "SYN_URGP" {
		t.Errorf("looked-up Name() = %q", f.Name())
	}
	if _, ok := FieldByName("nope"); ok {
		t.Error("FieldByName(nope) ok = true, want false")
	}

	event := stubEvent{"DPT": 25565, "ACK": true}
	if !DPT.Equals(25565)(event) {
		t.Error("preset DPT predicate = false, want true")
	}
	if !ACK.Equals(true)(event) {
		t.Error("preset ACK predicate = false, want true")
	}
}
