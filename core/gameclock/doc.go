// Package gameclock provides the pausable clock that cooldown end-times
// are anchored to.
//
// The game can be paused (town, menus, breakpoints under a debugger);
// cooldowns must not burn down while it is. Clock accounts for every
// paused interval so that a cooldown of N seconds always exposes exactly
// N seconds of running game time, however many pauses interleave.
package gameclock
