// Package memory provides best-effort read access to another process's
// address space.
//
// It consists of three layers:
//
//  1. Source: a raw random-access view of a process image. The production
//     implementation reads /proc/<pid>/mem through a single long-lived
//     file handle.
//
//  2. Attacher: tracks the target process by executable name and reopens
//     the Source transparently when the game restarts under a new pid.
//     The old handle is always closed before a new one is opened.
//
//  3. Reader: typed decoding on top of a Source: fixed-size records,
//     length-delimited vectors, pointers, and sentinel-terminated strings
//     in both single-byte and UTF-16 encodings.
//
// Every read in this package degrades rather than fails: a null address,
// a detached process, or an unmapped page produces an empty result and
// scanning continues. Nothing here returns an error to per-element
// callers; ErrNoSource exists for operations that need to distinguish
// "detached" at a coarser granularity.
package memory
