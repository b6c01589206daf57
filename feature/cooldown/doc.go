// Package cooldown tracks per-skill usability and remaining cooldown.
//
// The game only exposes a boolean "usable right now" per skill; the
// cooldown end-time has to be derived. The tracker watches usability
// edges: a usable-to-unusable transition stamps an end-time of
// now + duration, the reverse transition clears it, and a skill first
// seen mid-cooldown gets its end-time synthesized from the duration
// known at that moment.
//
// All timestamps live on the pausable game clock, so pausing the game
// freezes every remaining-duration readout exactly in place.
package cooldown
