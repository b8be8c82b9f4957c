package matching

import (
	"sort"

	"github.com/google/uuid"
)

// MinScore is the compatibility floor: anything at or below it is noise
// and never reaches the caller.
const MinScore = 0.30

// Rank filters, orders and bounds a scored pool. Self-matches are dropped
// here as a hard invariant even though pool queries already exclude the
// seeker. Ties are broken by ascending candidate ID so repeated runs over
// the same snapshot produce identical output.
func Rank(matches []Match, seekerID uuid.UUID, limit int) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.CandidateID == seekerID {
			continue
		}
		if m.Score <= MinScore {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CandidateID.String() < out[j].CandidateID.String()
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
