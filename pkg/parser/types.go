// Package parser converts raw UFW log lines into typed entries.
package parser

import "time"

// Entry represents a single parsed UFW log event.
//
// The first four fields are present on every well-formed line. The remaining
// fields come from the line's key=value token range and are optional: unset
// string fields are empty, unset port fields are zero. ACK and PSH reflect
// the presence of the corresponding bare tokens.
//
// Entries are constructed once by Parse and never modified afterwards, with
// a single exception: logfile.Open rewrites the year of EventTime, because
// UFW lines carry no year of their own.
type Entry struct {
	// EventTime is the timestamp from the start of the line. Parse leaves
	// the year at its zero default; the owning collection fills it in from
	// the source file's modification time.
	EventTime time.Time

	// Hostname is the host and logger tag, e.g. "myhost kernel:".
	Hostname string

	// Uptime is the kernel uptime in seconds from the bracketed field.
	Uptime float64

	// Event is the action tag, e.g. "BLOCK" or "ALLOW".
	Event string

	In  string
	Out string
	MAC string
	Src string
	Dst string

	Len     string
	TC      string
	TOS     string
	Perc    string
	TTL     string
	ID      string
	Proto   string
	Window  string
	Res     string
	SynUrgp string

	// SrcPort and DstPort are the SPT and DPT values coerced to integers.
	SrcPort int
	DstPort int

	ACK bool
	PSH bool
}

// FieldByName returns the value of the named attribute. Key=value fields use
// their log keys (IN, OUT, SPT, ...); the head fields use event_datetime,
// hostname, uptime, and event. The second return is false for unknown names.
func (e *Entry) FieldByName(name string) (any, bool) {
	switch name {
	case "event_datetime":
		return e.EventTime, true
	case "hostname":
		return e.Hostname, true
	case "uptime":
		return e.Uptime, true
	case "event":
		return e.Event, true
	case "IN":
		return e.In, true
	case "OUT":
		return e.Out, true
	case "MAC":
		return e.MAC, true
	case "SRC":
		return e.Src, true
	case "DST":
		return e.Dst, true
	case "LEN":
		return e.Len, true
	case "TC":
		return e.TC, true
	case "TOS":
		return e.TOS, true
	case "PERC":
		return e.Perc, true
	case "TTL":
		return e.TTL, true
	case "ID":
		return e.ID, true
	case "PROTO":
		return e.Proto, true
	case "SPT":
		return e.SrcPort, true
	case "DPT":
		return e.DstPort, true
	case "WINDOW":
		return e.Window, true
	case "RES":
		return e.Res, true
	case "SYN_URGP":
		return e.SynUrgp, true
	case "ACK":
		return e.ACK, true
	case "PSH":
		return e.PSH, true
	default:
		return nil, false
	}
}
