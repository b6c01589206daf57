package skills

import "strings"

// Scorer ranks duplicate records for the same skill name. Weights for
// known labels and the flat credit for unknown ones come straight from
// configuration.
type Scorer struct {
	weights map[string]float64
	unknown float64
}

// NewScorer builds a scorer over the configured label weights. Weight
// keys are normalized to lowercase once at construction.
func NewScorer(weights map[string]float64, unknown float64) *Scorer {
	w := make(map[string]float64, len(weights))
	for label, v := range weights {
		w[strings.ToLower(label)] = v
	}
	return &Scorer{weights: w, unknown: unknown}
}

// Score computes the duplicate-resolution score for a record:
//
//	(sum of label weights) * 100 + 2*len(metrics) - index
//
// Known labels carry their configured weight; unknown labels earn the
// flat credit.
func (s *Scorer) Score(r *Record) float64 {
	var sum float64
	for _, m := range r.Metrics {
		if w, ok := s.weights[strings.ToLower(m.Label)]; ok {
			sum += w
		} else {
			sum += s.unknown
		}
	}
	return sum*100 + float64(2*len(r.Metrics)) - float64(r.Index)
}

// Better reports whether a should replace b as the best row for a name.
// Higher score wins; at equal score more metrics win; at equal metric
// count the lower original index wins. The ordering is deterministic so
// scans merge to the same winner regardless of decode order.
func (s *Scorer) Better(a, b *Record) bool {
	sa, sb := s.Score(a), s.Score(b)
	if sa != sb {
		return sa > sb
	}
	if len(a.Metrics) != len(b.Metrics) {
		return len(a.Metrics) > len(b.Metrics)
	}
	return a.Index < b.Index
}
