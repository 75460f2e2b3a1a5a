package parser

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// timeLayout matches the month/day/time prefix of a UFW line. The lines
// carry no year, so parsed timestamps default to the zero year until the
// owning collection corrects them.
const timeLayout = "Jan 2 15:04:05"

// Parse converts one raw log line into an Entry.
//
// The line is split on single spaces and the final token is dropped: a
// well-formed UFW line ends with a trailing separator, so the last token is
// an empty artifact of the format. Tokens 0-2 are the timestamp, tokens 3-4
// the hostname, token 5 the bracketed uptime, token 7 (minus its trailing
// colon or bracket) the event tag. Everything from token 8 on is scanned for
// key=value pairs and the bare ACK/PSH flags.
//
// Returns a *MalformedLineError when any expected component is missing or
// unparsable. An empty uptime bracket is the one recoverable case: the
// log writer occasionally emits "[]", which parses as 0.0.
func Parse(line string) (*Entry, error) {
	// UFW left-pads the bracketed uptime with whitespace, which would
	// otherwise shift every token index. Strip the padding after each "[".
	if strings.Contains(line, "[ ") {
		frags := strings.Split(line, "[")
		for i, frag := range frags {
			frags[i] = strings.TrimLeftFunc(frag, unicode.IsSpace)
		}
		line = strings.Join(frags, "[")
	}

	fields := strings.Split(line, " ")
	fields = fields[:len(fields)-1]

	if len(fields) < 3 {
		return nil, &MalformedLineError{Component: "timestamp"}
	}
	ts, err := time.Parse(timeLayout, strings.Join(fields[0:3], " "))
	if err != nil {
		return nil, &MalformedLineError{
			Component: "timestamp",
			Token:     strings.Join(fields[0:3], " "),
			cause:     err,
		}
	}

	if len(fields) < 5 {
		return nil, &MalformedLineError{Component: "hostname"}
	}
	hostname := strings.Join(fields[3:5], " ")

	if len(fields) < 6 {
		return nil, &MalformedLineError{Component: "uptime"}
	}
	uptime, err := parseUptime(fields[5])
	if err != nil {
		return nil, err
	}

	if len(fields) < 8 {
		return nil, &MalformedLineError{Component: "event"}
	}
	event := fields[7]
	if event != "" {
		event = event[:len(event)-1]
	}

	entry := &Entry{
		EventTime: ts,
		Hostname:  hostname,
		Uptime:    uptime,
		Event:     event,
	}
	if err := assignFields(entry, fields[8:]); err != nil {
		return nil, err
	}
	return entry, nil
}

// parseUptime strips the surrounding bracket characters and parses the rest
// as a float. An empty bracket is recoverable and yields 0.0.
func parseUptime(tok string) (float64, error) {
	inner := tok
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	} else {
		inner = ""
	}
	if inner == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(inner, 64)
	if err != nil {
		return 0, &MalformedLineError{Component: "uptime", Token: tok, cause: err}
	}
	return v, nil
}

// assignFields maps the key=value token range onto the entry. A token is a
// pair only if both halves of its first "=" split are non-empty; everything
// else is checked against the bare ACK/PSH flags. Unknown keys are ignored.
func assignFields(entry *Entry, toks []string) error {
	for _, tok := range toks {
		i := strings.IndexByte(tok, '=')
		if i < 0 {
			switch tok {
			case "ACK":
				entry.ACK = true
			case "PSH":
				entry.PSH = true
			}
			continue
		}

		key, value := tok[:i], tok[i+1:]
		if key == "" || value == "" {
			continue
		}

		switch key {
		case "IN":
			entry.In = value
		case "OUT":
			entry.Out = value
		case "MAC":
			entry.MAC = value
		case "SRC":
			entry.Src = value
		case "DST":
			entry.Dst = value
		case "LEN":
			entry.Len = value
		case "TC":
			entry.TC = value
		case "TOS":
			entry.TOS = value
		case "PERC":
			entry.Perc = value
		case "TTL":
			entry.TTL = value
		case "ID":
			entry.ID = value
		case "PROTO":
			entry.Proto = value
		case "SPT":
			port, err := strconv.Atoi(value)
			if err != nil {
				return &MalformedLineError{Component: "SPT", Token: tok, cause: err}
			}
			entry.SrcPort = port
		case "DPT":
			port, err := strconv.Atoi(value)
			if err != nil {
				return &MalformedLineError{Component: "DPT", Token: tok, cause: err}
			}
			entry.DstPort = port
		case "WINDOW":
			entry.Window = value
		case "RES":
			entry.Res = value
		case "SYN_URGP":
			entry.SynUrgp = value
		}
	}
	return nil
}
