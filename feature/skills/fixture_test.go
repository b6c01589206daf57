package skills_test

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/misternay/Poe2-SkillEye/core/memory"
	"github.com/misternay/Poe2-SkillEye/feature/skills"
)

// image is a fake process image mapped at a fixed origin.
type image struct {
	origin uint64
	data   []byte
	reads  int
}

func newImage(origin uint64, size int) *image {
	return &image{origin: origin, data: make([]byte, size)}
}

func (m *image) ReadAt(addr uint64, buf []byte) (int, error) {
	m.reads++
	if addr < m.origin {
		return 0, errors.New("unmapped")
	}
	off := addr - m.origin
	if off >= uint64(len(m.data)) {
		return 0, errors.New("unmapped")
	}
	n := copy(buf, m.data[off:])
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

func (m *image) Close() error { return nil }

type fixedProvider struct{ src memory.Source }

func (p fixedProvider) Session() memory.Source { return p.src }

// staticOwner is a scan target with a fixed, always-resolvable base.
type staticOwner struct{ base uint64 }

func (o staticOwner) BaseAddress() (uint64, bool) { return o.base, o.base != 0 }

// fixture builds a synthetic skill vector inside a fake image using the
// test layout below. Offsets are arbitrary but self-consistent.
type fixture struct {
	img  *image
	next uint64
}

// testLayout is the single element shape used by the fixtures: an
// 8-byte element holding one pointer to a record laid out as
//
//	+0x00 name pointer (one hop to UTF-16 bytes)
//	+0x08 stats vector start pointer
//	+0x10 stats vector end pointer
//	+0x18 fallback cooldown (ms, u32)
//	+0x1c usability flag (u32)
//	+0x20 use counter (u32)
//
// and 16-byte stat elements: label pointer at +0, float32 value at +8.
func testLayout() skills.EntryLayout {
	return skills.EntryLayout{
		ElemSize:               8,
		RecordPtrOffset:        0,
		NameOffset:             0x00,
		NameHops:               1,
		StatsStartOffset:       0x08,
		StatsEndOffset:         0x10,
		StatElemSize:           16,
		StatValueOffset:        8,
		FallbackCooldownOffset: 0x18,
		UsableFlagOffset:       0x1c,
		UseCountOffset:         0x20,
	}
}

func testConfig() skills.Config {
	return skills.Config{
		Owner:   skills.OwnerLayout{VectorStartOffset: 0, VectorEndOffset: 8},
		Entries: []skills.EntryLayout{testLayout()},
		Weights: map[string]float64{
			"dps":      3.0,
			"aps":      2.0,
			"cooldown": 2.0,
		},
		UnknownLabelWeight: 0.25,
		MaxNameChars:       64,
	}
}

func newFixture() *fixture {
	return &fixture{img: newImage(0x10000, 0x10000), next: 0x12000}
}

func (f *fixture) alloc(n int) uint64 {
	addr := f.next
	// Keep allocations 8-aligned so vectors divide evenly.
	f.next += uint64((n + 7) &^ 7)
	return addr
}

func (f *fixture) putU64(addr, v uint64) {
	binary.LittleEndian.PutUint64(f.img.data[addr-f.img.origin:], v)
}

func (f *fixture) putU32(addr uint64, v uint32) {
	binary.LittleEndian.PutUint32(f.img.data[addr-f.img.origin:], v)
}

func (f *fixture) ascii(s string) uint64 {
	addr := f.alloc(len(s) + 1)
	copy(f.img.data[addr-f.img.origin:], s)
	return addr
}

func (f *fixture) utf16(s string) uint64 {
	addr := f.alloc(len(s)*2 + 2)
	off := addr - f.img.origin
	for _, r := range s {
		binary.LittleEndian.PutUint16(f.img.data[off:], uint16(r))
		off += 2
	}
	return addr
}

type stat struct {
	label string
	value float64
}

// record materializes a full skill record and returns its address.
func (f *fixture) record(name string, stats []stat, fallbackMS uint32, usable bool, useCount uint32) uint64 {
	rec := f.alloc(0x28)

	if name != "" {
		f.putU64(rec+0x00, f.utf16(name))
	}

	if len(stats) > 0 {
		vec := f.alloc(len(stats) * 16)
		for i, st := range stats {
			f.putU64(vec+uint64(i*16), f.ascii(st.label))
			f.putU32(vec+uint64(i*16)+8, math.Float32bits(float32(st.value)))
		}
		f.putU64(rec+0x08, vec)
		f.putU64(rec+0x10, vec+uint64(len(stats)*16))
	}

	f.putU32(rec+0x18, fallbackMS)
	if usable {
		f.putU32(rec+0x1c, 1)
	}
	f.putU32(rec+0x20, useCount)
	return rec
}

// owner materializes the element vector plus an owner whose boundary
// pair points at it, returning the owner base address. The vector is
// allocated with spare capacity so growVector can append in place.
func (f *fixture) owner(recPtrs []uint64) uint64 {
	vec := f.alloc((len(recPtrs) + 4) * 8)
	for i, p := range recPtrs {
		f.putU64(vec+uint64(i*8), p)
	}

	base := f.alloc(16)
	f.putU64(base, vec)
	f.putU64(base+8, vec+uint64(len(recPtrs)*8))
	return base
}

// growVector appends one element to an owner's vector in place by
// advancing the stored end boundary. The element slot must already
// exist; this simulates the remote process mutating its array.
func (f *fixture) growVector(base uint64, recPtr uint64) {
	end := binary.LittleEndian.Uint64(f.img.data[base+8-f.img.origin:])
	f.putU64(end, recPtr)
	f.putU64(base+8, end+8)
}

func newFixtureReader(f *fixture) *memory.Reader {
	return memory.NewReader(fixedProvider{src: f.img}, memory.Config{MaxStringBytes: 256})
}

func (f *fixture) scanner() (*skills.Scanner, *skills.Cache) {
	sc := skills.NewScanner(newFixtureReader(f), testConfig(), nil)
	return sc, skills.NewCache(sc, nil)
}
