package filter

// Preset fields, one per entry attribute. These are the usual starting
// point for building predicates:
//
//	blocked := filter.Event.Equals("BLOCK").And(filter.DPT.Equals(25565))
var (
	EventTime = NewField("event_datetime")
	Hostname  = NewField("hostname")
	Uptime    = NewField("uptime")
	Event     = NewField("event")
	In        = NewField("IN")
	Out       = NewField("OUT")
	MAC       = NewField("MAC")
	Src       = NewField("SRC")
	Dst       = NewField("DST")
	Len       = NewField("LEN")
	TC        = NewField("TC")
	TOS       = NewField("TOS")
	Perc      = NewField("PERC")
	TTL       = NewField("TTL")
	ID        = NewField("ID")
	Proto     = NewField("PROTO")
	SPT       = NewField("SPT")
	DPT       = NewField("DPT")
	Window    = NewField("WINDOW")
	Res       = NewField("RES")
	SynUrgp   = NewField("SYN_URGP")
	ACK       = NewField("ACK")
	PSH       = NewField("PSH")
)

// presets indexes the preset fields by their attribute names. Initialized
// once, never mutated.
var presets = map[string]Field{
	"event_datetime": EventTime,
	"hostname":       Hostname,
	"uptime":         Uptime,
	"event":          Event,
	"IN":             In,
	"OUT":            Out,
	"MAC":            MAC,
	"SRC":            Src,
	"DST":            Dst,
	"LEN":            Len,
	"TC":             TC,
	"TOS":            TOS,
	"PERC":           Perc,
	"TTL":            TTL,
	"ID":             ID,
	"PROTO":          Proto,
	"SPT":            SPT,
	"DPT":            DPT,
	"WINDOW":         Window,
	"RES":            Res,
	"SYN_URGP":       SynUrgp,
	"ACK":            ACK,
	"PSH":            PSH,
}

// FieldByName looks up a preset field by its attribute name.
func FieldByName(name string) (Field, bool) {
	f, ok := presets[name]
	return f, ok
}
