// Package skills scans the remote skill vector of an owning entity and
// maintains a de-duplicated best-row view of it.
//
// The game exposes the same logical skill array under more than one
// element shape, with heavy duplication inside it (one row per support
// link, per weapon set, per level). The scanner decodes every candidate
// shape, discards rows with no name or no stats, and resolves duplicates
// by a configured scoring formula so exactly one row survives per skill
// name.
//
// # Caching
//
// Scans are expensive relative to a poll tick, so results are cached per
// owner identity. The cache key to freshness is the skill vector's
// boundary pair: as long as (start, end) has not moved, the stored
// mapping is returned without touching the remote process at all. Any
// boundary change invalidates and rebuilds the whole entry; partial
// updates do not exist.
//
// # Live reads
//
// Cooldown queries need fresher numbers than a cached scan. LiveMetrics
// re-reads a single record through its retained raw handle, bypassing
// the cache and the scoring pass entirely.
package skills
