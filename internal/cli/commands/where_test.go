package commands

import (
	"testing"

	"ufwlog/pkg/parser"
)

func parsedEntry(t *testing.T) *parser.Entry {
	t.Helper()
	entry, err := parser.Parse("Sep 21 10:15:32 myhost kernel: [ 123.45] [UFW BLOCK] " +
		"IN=eth0 SRC=20.20.20.20 DST=5.6.7.8 PROTO=TCP SPT=12345 DPT=25565 ACK URGP=0 ")
	if err != nil {
		t.Fatal(err)
	}
	return entry
}

func TestParseWhere(t *testing.T) {
	entry := parsedEntry(t)

	tests := []struct {
		expr string
		want bool
	}{
		{"DPT=25565", true},
		{"DPT=80", false},
		{"DPT!=80", true},
		{"DPT>1024", true},
		{"DPT<1024", false},
		{"DPT>=25565", true},
		{"DPT<=25565", true},
		{"DPT<=25564", false},
		{"event=BLOCK", true},
		{"PROTO!=UDP", true},
		{"SRC~^20\\.", true},
		{"SRC~^10\\.", false},
		{"uptime>100", true},
		{"uptime<100.5", false},
		{"ACK=true", true},
		{"PSH=true", false},
		{"IN=eth0", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			preds, err := ParseWhere([]string{tt.expr})
			if err != nil {
				t.Fatalf("ParseWhere(%q) error = %v", tt.expr, err)
			}
			if len(preds) != 1 {
				t.Fatalf("got %d predicates, want 1", len(preds))
			}
			if got := preds[0](entry); got != tt.want {
				t.Errorf("%q matched = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseWhere_Conjunctive(t *testing.T) {
	preds, err := ParseWhere([]string{"event=BLOCK", "DPT=25565"})
	if err != nil {
		t.Fatalf("ParseWhere() error = %v", err)
	}
	if len(preds) != 2 {
		t.Fatalf("got %d predicates, want 2", len(preds))
	}

	entry := parsedEntry(t)
	for i, p := range preds {
		if !p(entry) {
			t.Errorf("predicate %d = false, want true", i)
		}
	}
}

func TestParseWhere_Invalid(t *testing.T) {
	tests := []string{
		"no operator here",
		"=25565",
		"NOPE=1",
		"SRC~([",
	}
	for _, expr := range tests {
		if _, err := ParseWhere([]string{expr}); err == nil {
			t.Errorf("ParseWhere(%q) error = nil, want failure", expr)
		}
	}
}
