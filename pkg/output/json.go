package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ufwlog/pkg/parser"
)

// TimestampLayout is the fixed textual form entry timestamps are exported
// in: year, date, and time of day down to microseconds.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// JSONFormatter exports entries as a JSON array, one mapping per entry.
// Unset optional fields are omitted; the ACK and PSH flags are always
// present.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// entryView mirrors the log's key naming for the exported mapping.
type entryView struct {
	EventDatetime string  `json:"event_datetime"`
	Hostname      string  `json:"hostname"`
	Uptime        float64 `json:"uptime"`
	Event         string  `json:"event"`
	In            string  `json:"IN,omitempty"`
	Out           string  `json:"OUT,omitempty"`
	MAC           string  `json:"MAC,omitempty"`
	Src           string  `json:"SRC,omitempty"`
	Dst           string  `json:"DST,omitempty"`
	Len           string  `json:"LEN,omitempty"`
	TC            string  `json:"TC,omitempty"`
	TOS           string  `json:"TOS,omitempty"`
	Perc          string  `json:"PERC,omitempty"`
	TTL           string  `json:"TTL,omitempty"`
	ID            string  `json:"ID,omitempty"`
	Proto         string  `json:"PROTO,omitempty"`
	SrcPort       int     `json:"SPT,omitempty"`
	DstPort       int     `json:"DPT,omitempty"`
	Window        string  `json:"WINDOW,omitempty"`
	Res           string  `json:"RES,omitempty"`
	SynUrgp       string  `json:"SYN_URGP,omitempty"`
	ACK           bool    `json:"ACK"`
	PSH           bool    `json:"PSH"`
}

func viewOf(e *parser.Entry) entryView {
	return entryView{
		EventDatetime: e.EventTime.Format(TimestampLayout),
		Hostname:      e.Hostname,
		Uptime:        e.Uptime,
		Event:         e.Event,
		In:            e.In,
		Out:           e.Out,
		MAC:           e.MAC,
		Src:           e.Src,
		Dst:           e.Dst,
		Len:           e.Len,
		TC:            e.TC,
		TOS:           e.TOS,
		Perc:          e.Perc,
		TTL:           e.TTL,
		ID:            e.ID,
		Proto:         e.Proto,
		SrcPort:       e.SrcPort,
		DstPort:       e.DstPort,
		Window:        e.Window,
		Res:           e.Res,
		SynUrgp:       e.SynUrgp,
		ACK:           e.ACK,
		PSH:           e.PSH,
	}
}

// Format renders the entries as JSON.
func (f *JSONFormatter) Format(entries []*parser.Entry, w io.Writer) error {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, viewOf(e))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(views)
}

// WriteFile renders the entries to a new file at path in the given format.
func WriteFile(path, format string, entries []*parser.Entry) error {
	formatter, err := New(format, FormatOptions{})
	if err != nil {
		return err
	}

	out, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := formatter.Format(entries, out); err != nil {
		_ = out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}
