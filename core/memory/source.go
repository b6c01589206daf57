package memory

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoSource indicates that no game process is currently attached.
var ErrNoSource = errors.New("memory: no source attached")

// Source is a random-access view of another process's address space.
// Implementations must tolerate reads at arbitrary addresses and report
// short reads through the returned count rather than panicking.
type Source interface {
	// ReadAt copies len(buf) bytes starting at addr into buf.
	// It returns the number of bytes actually read.
	ReadAt(addr uint64, buf []byte) (int, error)
	// Close releases the underlying handle.
	Close() error
}

// ProcSource reads a live process through /proc/<pid>/mem. The file handle
// is opened once and reused for every read.
type ProcSource struct {
	pid  int32
	file *os.File
}

// OpenProc opens the memory file of the given process.
func OpenProc(pid int32) (*ProcSource, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/mem", pid))
	if err != nil {
		return nil, fmt.Errorf("memory: open pid %d: %w", pid, err)
	}
	return &ProcSource{pid: pid, file: f}, nil
}

// Pid returns the process id this source is bound to.
func (s *ProcSource) Pid() int32 {
	return s.pid
}

// ReadAt reads from the process image at the given virtual address.
func (s *ProcSource) ReadAt(addr uint64, buf []byte) (int, error) {
	return s.file.ReadAt(buf, int64(addr))
}

// Close closes the underlying memory file.
func (s *ProcSource) Close() error {
	return s.file.Close()
}
