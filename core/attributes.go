package core

// AttrFlags is the attribute flag bitset. No flags are defined by the
// facade itself; backends assign meaning to individual bits and must
// forward bits they do not recognize.
type AttrFlags uint32

// AttributesVersion is the layout version stamped by NewAttributes.
// It is bumped whenever a field is appended to Attributes, so backends
// can tell which suffix of the record they may not understand.
const AttributesVersion uint16 = 1

// Attributes is the versioned metadata record attached to every
// emission. The leading version tag and flag bitset are fixed: a
// backend built against layout version N processes any record with
// Version <= N and ignores fields it does not know about.
type Attributes struct {
	Version uint16
	Flags   AttrFlags
}

// NewAttributes returns an Attributes record tagged with the current
// layout version and no flags set.
func NewAttributes() Attributes {
	return Attributes{Version: AttributesVersion}
}

// DumpFlags is the opaque flag word carried by dump emissions. The
// facade always sends zero; any other value is backend-defined and
// passed through verbatim.
type DumpFlags uint32
