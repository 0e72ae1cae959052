package electorate

import (
	"cmp"
	"slices"
)

// selectCandidates ranks the applicant pool into the candidate pool of
// the round: applicants ordered by total stake descending, capped at the
// candidacy limit. Equal totals are broken by ascending address order so
// the ranking is deterministic accross replays
func (e *Electorate) selectCandidates() []Address {
	candidates := make([]Address, 0, len(e.applicants))
	for applicant := range e.applicants {
		candidates = append(candidates, applicant)
	}
	slices.SortFunc(candidates, func(a, b Address) int {
		if n := cmp.Compare(e.applicants[b].Total(), e.applicants[a].Total()); n != 0 {
			return n
		}
		return cmp.Compare(a, b)
	})
	if limit := int(e.options.CandidacyLimit); len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// isCandidate tell if addr is part of the frozen candidate pool
func (e *Electorate) isCandidate(addr Address) bool {
	return slices.Contains(e.candidates, addr)
}
