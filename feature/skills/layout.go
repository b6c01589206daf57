package skills

// OwnerLayout describes where the skill-vector boundary pair lives
// relative to an owner's base address. Offsets change per game build and
// are deployment configuration, not code.
type OwnerLayout struct {
	// VectorStartOffset locates the pointer to the first vector element.
	VectorStartOffset uint64 `mapstructure:"vector_start_offset"`
	// VectorEndOffset locates the pointer one past the last element.
	VectorEndOffset uint64 `mapstructure:"vector_end_offset"`
}

// EntryLayout describes one candidate element shape for the skill vector.
// A build may expose the same logical array under more than one shape;
// each layout is scanned independently and the results merged.
type EntryLayout struct {
	// ElemSize is the fixed element width in bytes.
	ElemSize int `mapstructure:"elem_size"`
	// RecordPtrOffset locates the pointer to the full skill record within
	// one element.
	RecordPtrOffset int `mapstructure:"record_ptr_offset"`

	// NameOffset locates the name pointer chain within the record.
	NameOffset uint64 `mapstructure:"name_offset"`
	// NameHops is the number of pointer indirections before the UTF-16
	// name bytes. Part of the layout contract, deliberately explicit.
	NameHops int `mapstructure:"name_hops"`

	// StatsStartOffset and StatsEndOffset locate the boundary pointer
	// pair of the record's stat vector.
	StatsStartOffset uint64 `mapstructure:"stats_start_offset"`
	StatsEndOffset   uint64 `mapstructure:"stats_end_offset"`

	// StatElemSize is the width of one stat element; the label pointer
	// sits at its start and the value at StatValueOffset.
	StatElemSize    int    `mapstructure:"stat_elem_size"`
	StatValueOffset int    `mapstructure:"stat_value_offset"`
	// FallbackCooldownOffset locates the static cooldown hint (ms).
	FallbackCooldownOffset uint64 `mapstructure:"fallback_cooldown_offset"`

	// UsableFlagOffset locates the live usability flag on the record
	// (nonzero means usable); UseCountOffset locates the monotonic use
	// counter next to it.
	UsableFlagOffset uint64 `mapstructure:"usable_flag_offset"`
	UseCountOffset   uint64 `mapstructure:"use_count_offset"`
}

// DefaultOwnerLayout matches the current supported game build.
func DefaultOwnerLayout() OwnerLayout {
	return OwnerLayout{
		VectorStartOffset: 0x30,
		VectorEndOffset:   0x38,
	}
}

// DefaultEntryLayouts matches the current supported game build, which
// exposes the skill vector under a wide and a packed element shape.
func DefaultEntryLayouts() []EntryLayout {
	return []EntryLayout{
		{
			ElemSize:               0x10,
			RecordPtrOffset:        0x00,
			NameOffset:             0x08,
			NameHops:               2,
			StatsStartOffset:       0x40,
			StatsEndOffset:         0x48,
			StatElemSize:           0x10,
			StatValueOffset:        0x08,
			FallbackCooldownOffset: 0x60,
			UsableFlagOffset:       0x68,
			UseCountOffset:         0x6c,
		},
		{
			ElemSize:               0x08,
			RecordPtrOffset:        0x00,
			NameOffset:             0x08,
			NameHops:               2,
			StatsStartOffset:       0x40,
			StatsEndOffset:         0x48,
			StatElemSize:           0x10,
			StatValueOffset:        0x08,
			FallbackCooldownOffset: 0x60,
			UsableFlagOffset:       0x68,
			UseCountOffset:         0x6c,
		},
	}
}
