package utils

import (
	"strconv"
	"strings"
)

// ParseAddress parses a memory address written in decimal or 0x-prefixed
// hex. Empty input parses to zero, which callers treat as "not
// configured".
func ParseAddress(s string) (uint64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, nil
	}
	if hexPart, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseUint(hexPart, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// FormatAddress renders an address the way scan dumps and log lines
// expect it: 0x-prefixed lowercase hex.
func FormatAddress(addr uint64) string {
	return "0x" + strconv.FormatUint(addr, 16)
}
