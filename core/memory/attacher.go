package memory

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// Attacher tracks the target game process by executable name and hands out
// a shared Source for it. The handle is reused across reads and reopened
// only when the tracked process id changes; the stale handle is closed
// first. Attach failures degrade to a nil Source and are never fatal.
type Attacher struct {
	name string
	log  *zap.Logger

	pid int32
	src Source

	// findPid and open are swappable for tests.
	findPid func(name string) (int32, bool)
	open    func(pid int32) (Source, error)
}

// NewAttacher creates an attacher for the given executable name.
func NewAttacher(cfg Config, log *zap.Logger) *Attacher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Attacher{
		name:    cfg.ProcessName,
		log:     log,
		findPid: findPidByName,
		open:    func(pid int32) (Source, error) { return OpenProc(pid) },
	}
}

// Session returns the Source for the current target process, reattaching
// if the process has restarted since the last call. It returns nil when
// no matching process is running or the handle cannot be opened.
func (a *Attacher) Session() Source {
	pid, ok := a.findPid(a.name)
	if !ok {
		a.drop()
		return nil
	}

	if a.src != nil && pid == a.pid {
		return a.src
	}

	// Process identity changed: close the old handle before reopening.
	a.drop()

	src, err := a.open(pid)
	if err != nil {
		a.log.Debug("attach failed", zap.Int32("pid", pid), zap.Error(err))
		return nil
	}

	a.log.Info("attached to process", zap.String("name", a.name), zap.Int32("pid", pid))
	a.pid = pid
	a.src = src
	return a.src
}

// Ping reports whether a source is currently reachable, reattaching
// first if needed. It returns ErrNoSource while the process is gone.
func (a *Attacher) Ping() error {
	if a.Session() == nil {
		return ErrNoSource
	}
	return nil
}

// Pid returns the currently attached process id, or 0 when detached.
func (a *Attacher) Pid() int32 {
	return a.pid
}

// Close releases the current handle, if any.
func (a *Attacher) Close() error {
	a.drop()
	return nil
}

func (a *Attacher) drop() {
	if a.src != nil {
		_ = a.src.Close()
	}
	a.src = nil
	a.pid = 0
}

// findPidByName scans the process table for the first process whose
// executable name matches, case-insensitively.
func findPidByName(name string) (int32, bool) {
	procs, err := process.Processes()
	if err != nil {
		return 0, false
	}
	for _, p := range procs {
		n, err := p.Name()
		if err != nil {
			continue
		}
		if strings.EqualFold(n, name) {
			return p.Pid, true
		}
	}
	return 0, false
}
