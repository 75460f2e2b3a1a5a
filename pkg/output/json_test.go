package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ufwlog/pkg/parser"
)

func sampleEntry(t *testing.T) *parser.Entry {
	t.Helper()
	entry, err := parser.Parse("Sep 21 10:15:32 myhost kernel: [ 123.45] [UFW BLOCK] " +
		"IN=eth0 SRC=1.2.3.4 DST=5.6.7.8 PROTO=TCP SPT=12345 DPT=25565 ACK URGP=0 ")
	if err != nil {
		t.Fatal(err)
	}
	entry.EventTime = time.Date(2024, 9, 21, 10, 15, 32, 0, time.UTC)
	return entry
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format([]*parser.Entry{sampleEntry(t)}, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d objects, want 1", len(decoded))
	}
	obj := decoded[0]

	if got := obj["event_datetime"]; got != "2024-09-21 10:15:32.000000" {
		t.Errorf("event_datetime = %v", got)
	}
	if got := obj["event"]; got != "BLOCK" {
		t.Errorf("event = %v", got)
	}
	if got := obj["DPT"]; got != float64(25565) {
		t.Errorf("DPT = %v", got)
	}
	if got := obj["uptime"]; got != 123.45 {
		t.Errorf("uptime = %v", got)
	}

	// Unset optional fields are omitted entirely.
	for _, absent := range []string{"OUT", "MAC", "LEN", "TTL", "WINDOW", "SYN_URGP"} {
		if _, present := obj[absent]; present {
			t.Errorf("unset field %s present in output", absent)
		}
	}

	// The flags are always present, even when false.
	if got, present := obj["ACK"]; !present || got != true {
		t.Errorf("ACK = %v (present=%v), want explicit true", got, present)
	}
	if got, present := obj["PSH"]; !present || got != false {
		t.Errorf("PSH = %v (present=%v), want explicit false", got, present)
	}
}

func TestTextFormatter(t *testing.T) {
	entry := sampleEntry(t)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format([]*parser.Entry{entry}, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	got := buf.String()

	for _, want := range []string{"BLOCK", "1.2.3.4", "5.6.7.8", "12345->25565", "ACK", "1 entries"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	var verbose bytes.Buffer
	vf := NewTextFormatter(FormatOptions{Verbose: true})
	if err := vf.Format([]*parser.Entry{entry}, &verbose); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !bytes.Contains(verbose.Bytes(), []byte("IN=eth0")) {
		t.Errorf("verbose output missing IN=eth0:\n%s", verbose.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(path, "json", []*parser.Entry{sampleEntry(t)}); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Errorf("decoded %d objects, want 1", len(decoded))
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New("xml", FormatOptions{}); err == nil {
		t.Error("New(xml) error = nil, want unknown format error")
	}
}
