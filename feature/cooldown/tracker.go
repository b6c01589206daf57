package cooldown

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/misternay/Poe2-SkillEye/core/gameclock"
	"github.com/misternay/Poe2-SkillEye/core/logger"
)

// DurationFunc resolves the current raw cooldown duration for a skill
// name on demand. The coordination layer assembles it with the intended
// precedence: live metrics re-read, then cached best-row metrics, then
// the record's static fallback, then zero.
type DurationFunc func(name string) time.Duration

// state is the per-skill usage bookkeeping.
type state struct {
	lastUseCount uint32
	wasUsable    bool
	end          time.Duration
	hasEnd       bool
}

// Tracker derives usable/on-cooldown status per skill from a stream of
// observations, anchored to the pausable game clock so pauses never eat
// into a cooldown.
type Tracker struct {
	clock   *gameclock.Clock
	resolve DurationFunc
	log     *zap.Logger

	suppressed []string
	states     map[string]*state
}

// NewTracker creates a tracker over the given clock. resolve may be nil,
// in which case Remaining never materializes a missing end-time.
func NewTracker(clock *gameclock.Clock, cfg Config, resolve DurationFunc, log *zap.Logger) *Tracker {
	cfg.Normalize()
	suppressed := make([]string, 0, len(cfg.SuppressContains))
	for _, frag := range cfg.SuppressContains {
		suppressed = append(suppressed, strings.ToLower(frag))
	}
	return &Tracker{
		clock:      clock,
		resolve:    resolve,
		log:        logger.WithComponent(log, "cooldown"),
		suppressed: suppressed,
		states:     make(map[string]*state),
	}
}

// Observe feeds one poll's view of a skill into the state machine.
// durationNow is the raw cooldown duration as currently known; it is
// consulted only when a new end-time has to be stamped.
func (t *Tracker) Observe(name string, isUsable bool, useCount uint32, durationNow time.Duration) {
	key := strings.ToLower(name)

	if t.isSuppressed(key) {
		// Suppressed skills carry no state at all; any tracked cooldown
		// from before the key entered the list is dropped here.
		delete(t.states, key)
		return
	}

	st, ok := t.states[key]
	if !ok {
		st = &state{wasUsable: isUsable}
		t.states[key] = st
	}

	now := t.clock.Now()
	switch {
	case st.wasUsable && !isUsable:
		// Falling edge: the skill was just used.
		st.end = now + durationNow
		st.hasEnd = true
	case !st.wasUsable && isUsable:
		// Rising edge: cooldown over, clear the stored end.
		st.end = 0
		st.hasEnd = false
	case !isUsable && !st.hasEnd && durationNow > 0:
		// First sight of a skill already mid-cooldown: synthesize the
		// end-time we never saw begin.
		st.end = now + durationNow
		st.hasEnd = true
	}

	st.wasUsable = isUsable
	st.lastUseCount = useCount
}

// Remaining reports how much cooldown is left for a skill. Usable and
// suppressed skills always report zero. A skill known to be unusable
// with no stored end-time asks the resolver for a duration and stores
// the result rather than silently reporting zero.
func (t *Tracker) Remaining(name string) time.Duration {
	key := strings.ToLower(name)
	if t.isSuppressed(key) {
		return 0
	}

	st, ok := t.states[key]
	if !ok || st.wasUsable {
		return 0
	}

	now := t.clock.Now()
	if st.hasEnd {
		if rem := st.end - now; rem > 0 {
			return rem
		}
		return 0
	}

	if t.resolve != nil {
		if d := t.resolve(name); d > 0 {
			st.end = now + d
			st.hasEnd = true
			return d
		}
	}
	return 0
}

// Usable reports the last observed usability of a skill. Unknown skills
// count as usable.
func (t *Tracker) Usable(name string) bool {
	st, ok := t.states[strings.ToLower(name)]
	if !ok {
		return true
	}
	return st.wasUsable
}

// Forget drops all state for a skill.
func (t *Tracker) Forget(name string) {
	delete(t.states, strings.ToLower(name))
}

func (t *Tracker) isSuppressed(key string) bool {
	for _, frag := range t.suppressed {
		if strings.Contains(key, frag) {
			return true
		}
	}
	return false
}
