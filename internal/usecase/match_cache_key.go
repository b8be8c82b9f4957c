package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"mentor-match/internal/domain/matching"

	"github.com/google/uuid"
)

type matchesCacheKeyInput struct {
	SeekerID            string   `json:"seeker_id"`
	PreferredSkills     []string `json:"preferred_skills"`
	PreferredIndustries []string `json:"preferred_industries"`
	ExperienceLevel     string   `json:"experience_level"`
	LocationHint        string   `json:"location_hint"`
	GapMin              *int     `json:"gap_min"`
	GapMax              *int     `json:"gap_max"`
	Limit               int      `json:"limit"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeCacheList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeCacheValue(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// matchesCacheKey hashes the normalized request so any preference change
// produces a distinct key. The seeker ID stays in clear text to keep
// per-member invalidation a pattern delete.
func matchesCacheKey(seekerID uuid.UUID, prefs matching.Preferences, limit int) string {
	in := matchesCacheKeyInput{
		SeekerID:            seekerID.String(),
		PreferredSkills:     normalizeCacheList(prefs.PreferredSkills),
		PreferredIndustries: normalizeCacheList(prefs.PreferredIndustries),
		ExperienceLevel:     normalizeCacheValue(prefs.ExperienceLevel),
		LocationHint:        normalizeCacheValue(prefs.PreferredLocationHint),
		Limit:               limit,
	}
	if r := prefs.YearGapRange; r != nil {
		gapMin, gapMax := r.Min, r.Max
		in.GapMin = &gapMin
		in.GapMax = &gapMax
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "matches:" + seekerID.String() + ":" + hex.EncodeToString(sum[:])
}
