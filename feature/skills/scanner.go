package skills

import (
	"encoding/binary"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/misternay/Poe2-SkillEye/core/logger"
	"github.com/misternay/Poe2-SkillEye/core/memory"
)

// Scanner decodes the remote skill vector of an owner into the best-row
// mapping. Every decode failure is scoped to the element it happened in;
// a scan never fails as a whole.
type Scanner struct {
	reader *memory.Reader
	cfg    Config
	scorer *Scorer
	log    *zap.Logger
}

// NewScanner creates a scanner over the given reader.
func NewScanner(reader *memory.Reader, cfg Config, log *zap.Logger) *Scanner {
	cfg.Normalize()
	return &Scanner{
		reader: reader,
		cfg:    cfg,
		scorer: NewScorer(cfg.Weights, cfg.UnknownLabelWeight),
		log:    logger.WithComponent(log, "skills"),
	}
}

// Scorer exposes the scanner's duplicate-resolution scorer.
func (s *Scanner) Scorer() *Scorer {
	return s.scorer
}

// Boundaries reads the current skill-vector boundary pair for an owner
// base address. A pair that cannot be resolved reports ok=false.
func (s *Scanner) Boundaries(base uint64) (start, end uint64, ok bool) {
	if base == 0 {
		return 0, 0, false
	}
	start, okStart := s.reader.ReadPointer(base + s.cfg.Owner.VectorStartOffset)
	end, okEnd := s.reader.ReadPointer(base + s.cfg.Owner.VectorEndOffset)
	if !okStart || !okEnd || start == 0 || end < start {
		return 0, 0, false
	}
	return start, end, true
}

// Scan rebuilds the full best-row mapping for the given boundary pair.
// Each configured element shape is scanned independently over the same
// range and the results merged through the scorer.
func (s *Scanner) Scan(start, end uint64) map[string]*Record {
	rows := make(map[string]*Record)
	for _, layout := range s.cfg.Entries {
		elems := s.reader.ReadVector(start, end, layout.ElemSize)
		for i, elem := range elems {
			rec := s.decodeElement(layout, i, elem)
			if rec == nil {
				continue
			}
			key := normalize(rec.Name)
			if cur, ok := rows[key]; !ok || s.scorer.Better(rec, cur) {
				rows[key] = rec
			}
		}
	}
	return rows
}

// decodeElement resolves one vector element to a full record. A null
// record pointer, an empty name, or an empty metric set discards the
// element; the rest of the scan is unaffected.
func (s *Scanner) decodeElement(layout EntryLayout, index int, elem []byte) *Record {
	if layout.RecordPtrOffset+8 > len(elem) {
		return nil
	}
	recPtr := binary.LittleEndian.Uint64(elem[layout.RecordPtrOffset:])
	if recPtr == 0 {
		return nil
	}

	name := s.reader.ReadStringIndirect(recPtr+layout.NameOffset, layout.NameHops, s.cfg.MaxNameChars)
	if name == "" {
		return nil
	}

	metrics := s.decodeMetrics(layout, recPtr)
	if len(metrics) == 0 {
		return nil
	}

	rec := &Record{
		Index:     index,
		Name:      name,
		RawHandle: recPtr,
		Metrics:   metrics,
	}
	if v, ok := s.reader.ReadUint32(recPtr + layout.FallbackCooldownOffset); ok {
		rec.FallbackCooldownMS = v
	}
	return rec
}

// decodeMetrics reads the stat vector of a record. Duplicate labels keep
// their first occurrence so labels stay unique within a record.
func (s *Scanner) decodeMetrics(layout EntryLayout, recPtr uint64) []Metric {
	statStart, ok1 := s.reader.ReadPointer(recPtr + layout.StatsStartOffset)
	statEnd, ok2 := s.reader.ReadPointer(recPtr + layout.StatsEndOffset)
	if !ok1 || !ok2 {
		return nil
	}

	elems := s.reader.ReadVector(statStart, statEnd, layout.StatElemSize)
	metrics := make([]Metric, 0, len(elems))
	seen := make(map[string]struct{}, len(elems))
	for _, elem := range elems {
		if len(elem) < 8 {
			break
		}
		labelPtr := binary.LittleEndian.Uint64(elem)
		if labelPtr == 0 {
			continue
		}
		label := s.reader.ReadStringFixed(labelPtr, 0)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		v, okV := readStatValue(elem, layout.StatValueOffset)
		if !okV {
			continue
		}
		metrics = append(metrics, Metric{Label: label, Value: v})
	}
	return metrics
}

// readStatValue decodes the float32 stat value embedded in one stat
// element.
func readStatValue(elem []byte, off int) (float64, bool) {
	if off+4 > len(elem) {
		return 0, false
	}
	bits := binary.LittleEndian.Uint32(elem[off:])
	return float64(math.Float32frombits(bits)), true
}

// LiveStatus reads the current usability flag and use counter of a
// record straight from the source. These change every frame, so they are
// never served from the best-row cache.
func (s *Scanner) LiveStatus(rawHandle uint64) (usable bool, useCount uint32, ok bool) {
	if rawHandle == 0 || len(s.cfg.Entries) == 0 {
		return false, 0, false
	}
	layout := s.cfg.Entries[0]
	flag, okFlag := s.reader.ReadUint32(rawHandle + layout.UsableFlagOffset)
	if !okFlag {
		return false, 0, false
	}
	count, _ := s.reader.ReadUint32(rawHandle + layout.UseCountOffset)
	return flag != 0, count, true
}

// LiveMetrics re-reads a record's metrics straight from the source,
// bypassing the best-row cache and its scoring pass. Record-level stat
// offsets agree across the configured element shapes, so the first shape
// is authoritative here. Returns ok=false when the handle resolves to no
// metrics.
func (s *Scanner) LiveMetrics(rawHandle uint64) ([]Metric, bool) {
	if rawHandle == 0 || len(s.cfg.Entries) == 0 {
		return nil, false
	}
	metrics := s.decodeMetrics(s.cfg.Entries[0], rawHandle)
	if len(metrics) == 0 {
		return nil, false
	}
	return metrics, true
}
