package skills

import "strings"

// Metric is a single (label, value) pair decoded from a skill row.
// Labels are unique within one record.
type Metric struct {
	// Label is the stat name as exposed by the game, e.g. "DPS".
	Label string
	// Value is the decoded numeric value.
	Value float64
}

// Record is one decoded skill entry from the remote skill vector.
type Record struct {
	// Index is the element's position in the source array.
	Index int

	// Name is the display name. Records with an empty name are discarded
	// before they ever reach the best-row mapping.
	Name string

	// RawHandle is the remote address of the full record, kept so callers
	// can request a live metrics re-read later without a rescan.
	RawHandle uint64

	// Metrics holds the decoded stat pairs in source order.
	Metrics []Metric

	// FallbackCooldownMS is a static cooldown hint carried on the record
	// itself, used only when no live or cached metric provides one.
	FallbackCooldownMS uint32
}

// Metric returns the value for the given label, matched case-insensitively.
func (r *Record) Metric(label string) (float64, bool) {
	for _, m := range r.Metrics {
		if strings.EqualFold(m.Label, label) {
			return m.Value, true
		}
	}
	return 0, false
}

// Owner is a scan target: anything that can report the stable base
// address its skill vector hangs off. The presentation layer implements
// this for the local player and for party members.
type Owner interface {
	// BaseAddress returns the owner's base address and whether it is
	// currently resolvable.
	BaseAddress() (uint64, bool)
}

// normalize is the canonical key form for the best-row mapping.
func normalize(name string) string {
	return strings.ToLower(name)
}
