package output

import (
	"fmt"
	"io"
	"strings"

	"ufwlog/pkg/parser"
)

// TextFormatter renders entries as one human-readable line each.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the entries as text.
func (f *TextFormatter) Format(entries []*parser.Entry, w io.Writer) error {
	for _, e := range entries {
		f.formatEntry(e, w)
	}
	fmt.Fprintf(w, "---\n%d entries\n", len(entries))
	return nil
}

func (f *TextFormatter) formatEntry(e *parser.Entry, w io.Writer) {
	fmt.Fprintf(w, "%s %-5s %s -> %s",
		e.EventTime.Format("2006-01-02 15:04:05"), e.Event, e.Src, e.Dst)

	if e.Proto != "" {
		fmt.Fprintf(w, " %s", e.Proto)
	}
	if e.SrcPort != 0 || e.DstPort != 0 {
		fmt.Fprintf(w, " %d->%d", e.SrcPort, e.DstPort)
	}
	if flags := flagString(e); flags != "" {
		fmt.Fprintf(w, " [%s]", flags)
	}
	fmt.Fprintln(w)

	if f.opts.Verbose {
		fmt.Fprintf(w, "    host=%q uptime=%.2f", e.Hostname, e.Uptime)
		for _, kv := range []struct{ key, value string }{
			{"IN", e.In}, {"OUT", e.Out}, {"MAC", e.MAC},
			{"LEN", e.Len}, {"TC", e.TC}, {"TOS", e.TOS},
			{"PERC", e.Perc}, {"TTL", e.TTL}, {"ID", e.ID},
			{"WINDOW", e.Window}, {"RES", e.Res}, {"SYN_URGP", e.SynUrgp},
		} {
			if kv.value != "" {
				fmt.Fprintf(w, " %s=%s", kv.key, kv.value)
			}
		}
		fmt.Fprintln(w)
	}
}

func flagString(e *parser.Entry) string {
	var flags []string
	if e.ACK {
		flags = append(flags, "ACK")
	}
	if e.PSH {
		flags = append(flags, "PSH")
	}
	return strings.Join(flags, " ")
}
