package memory

import (
	"encoding/binary"
	"math"
)

// Provider hands out the Source to read through. Attacher satisfies it;
// tests substitute an in-memory fake.
type Provider interface {
	Session() Source
}

// Reader is the typed-read layer over a raw Source. Every read is
// best-effort: a null address, a detached source, or a short read yields
// an empty result, never an error that escapes to callers.
type Reader struct {
	provider Provider
	maxStr   int
	maxVec   int
}

// NewReader creates a reader over the given source provider.
func NewReader(p Provider, cfg Config) *Reader {
	maxStr := cfg.MaxStringBytes
	if maxStr <= 0 {
		maxStr = 256
	}
	maxVec := cfg.MaxVectorBytes
	if maxVec <= 0 {
		maxVec = 1 << 20
	}
	return &Reader{provider: p, maxStr: maxStr, maxVec: maxVec}
}

// ReadRecord returns a copy of size bytes at addr. A null address or a
// failed read yields a nil slice.
func (r *Reader) ReadRecord(addr uint64, size int) []byte {
	if addr == 0 || size <= 0 {
		return nil
	}
	src := r.provider.Session()
	if src == nil {
		return nil
	}
	buf := make([]byte, size)
	n, err := src.ReadAt(addr, buf)
	if err != nil || n != size {
		return nil
	}
	return buf
}

// ReadPointer reads a 64-bit little-endian pointer at addr.
func (r *Reader) ReadPointer(addr uint64) (uint64, bool) {
	buf := r.ReadRecord(addr, 8)
	if buf == nil {
		return 0, false
	}
	return binary.LittleEndian.Uint64(buf), true
}

// ReadUint32 reads a 32-bit little-endian integer at addr.
func (r *Reader) ReadUint32(addr uint64) (uint32, bool) {
	buf := r.ReadRecord(addr, 4)
	if buf == nil {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buf), true
}

// ReadFloat32 reads a 32-bit little-endian float at addr.
func (r *Reader) ReadFloat32(addr uint64) (float32, bool) {
	v, ok := r.ReadUint32(addr)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(v), true
}

// ReadVector reads the contiguous [start,end) byte range of a remote
// vector and slices it into elemSize-wide records. A range whose length
// does not divide evenly by elemSize is treated as empty, as is a
// reversed or null boundary pair, or one spanning more than the
// configured vector cap. The boundary pair is remote data; it is never
// trusted to size an allocation on its own.
func (r *Reader) ReadVector(start, end uint64, elemSize int) [][]byte {
	if start == 0 || end <= start || elemSize <= 0 {
		return nil
	}
	if end-start > uint64(r.maxVec) {
		return nil
	}
	total := int(end - start)
	if total%elemSize != 0 {
		return nil
	}
	raw := r.ReadRecord(start, total)
	if raw == nil {
		return nil
	}
	out := make([][]byte, 0, total/elemSize)
	for off := 0; off < total; off += elemSize {
		out = append(out, raw[off:off+elemSize])
	}
	return out
}
