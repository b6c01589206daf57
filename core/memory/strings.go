package memory

import (
	"encoding/binary"
	"unicode/utf16"
)

// ReadStringFixed reads a NUL-terminated single-byte string at addr,
// scanning at most maxBytes. The result is truncated at the first NUL.
func (r *Reader) ReadStringFixed(addr uint64, maxBytes int) string {
	if maxBytes <= 0 || maxBytes > r.maxStr {
		maxBytes = r.maxStr
	}
	buf := r.readUpTo(addr, maxBytes)
	if len(buf) == 0 {
		return ""
	}
	for i, b := range buf {
		if b == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(buf)
}

// ReadStringUTF16 reads a 0x0000-terminated UTF-16LE string at addr,
// scanning at most maxChars code units.
func (r *Reader) ReadStringUTF16(addr uint64, maxChars int) string {
	if maxChars <= 0 || maxChars*2 > r.maxStr {
		maxChars = r.maxStr / 2
	}
	buf := r.readUpTo(addr, maxChars*2)
	if len(buf) < 2 {
		return ""
	}
	units := make([]uint16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		u := binary.LittleEndian.Uint16(buf[i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// ReadStringIndirect chases hops pointers starting at addr and reads a
// UTF-16 string at the final address. The hop count is part of the layout
// contract for a deployment and is passed through verbatim; a null pointer
// at any hop yields the empty string.
func (r *Reader) ReadStringIndirect(addr uint64, hops, maxChars int) string {
	cur := addr
	for i := 0; i < hops; i++ {
		next, ok := r.ReadPointer(cur)
		if !ok || next == 0 {
			return ""
		}
		cur = next
	}
	return r.ReadStringUTF16(cur, maxChars)
}

// readUpTo reads as many of n bytes as the source will give, shrinking
// the window on failure so strings near an unmapped page edge still
// resolve. It returns nil when nothing is readable.
func (r *Reader) readUpTo(addr uint64, n int) []byte {
	if addr == 0 || n <= 0 {
		return nil
	}
	src := r.provider.Session()
	if src == nil {
		return nil
	}
	buf := make([]byte, n)
	got, err := src.ReadAt(addr, buf)
	if err != nil && got <= 0 {
		return nil
	}
	return buf[:got]
}
