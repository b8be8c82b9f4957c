package matching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Weights control how much each criterion contributes to the final score.
// They sum to 1.0 so the plain weighted sum already lands in [0,1].
type Weights struct {
	Skills        float64
	Industry      float64
	Experience    float64
	Location      float64
	YearProximity float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:        0.40,
		Industry:      0.25,
		Experience:    0.20,
		Location:      0.10,
		YearProximity: 0.05,
	}
}

func (w Weights) sum() float64 {
	return w.Skills + w.Industry + w.Experience + w.Location + w.YearProximity
}

const (
	neutralScore = 0.5

	// A criterion only explains a match when it scored strictly above half
	// of its own scale. For skills the threshold applies to the base overlap,
	// before the preferred-skill bonus.
	reasonThreshold = 0.5

	preferredSkillBonus = 0.2

	// The semantic bonus adds to numerator and denominator alike, so the
	// final score stays in [0,1] whether or not the bonus fired.
	semanticBonusValue  = 0.1
	semanticBonusWeight = 0.1

	ReasonSemanticSimilarity = "semantic profile similarity"
	ReasonIndustry           = "industry alignment"
	ReasonExperienceGap      = "complementary experience gap"
	ReasonLocation           = "shared location"
	ReasonYearProximity      = "close graduation years"
)

type Engine struct {
	weights    Weights
	industries Vocabulary
	localities Vocabulary
}

func NewEngine(weights Weights, industries, localities Vocabulary) *Engine {
	if weights.sum() <= 0 {
		weights = DefaultWeights()
	}
	if len(industries) == 0 {
		industries = DefaultIndustryVocabulary()
	}
	if len(localities) == 0 {
		localities = DefaultLocalityVocabulary()
	}
	return &Engine{weights: weights, industries: industries, localities: localities}
}

// Subscores holds the per-criterion results for one seeker/candidate pair.
// SharedSkills doubles as the lexical-overlap signal: when it is empty the
// caller may consult the semantic similarity provider before combining.
type Subscores struct {
	CandidateID   uuid.UUID
	Skills        float64
	SkillsBase    float64
	SharedSkills  []string
	Industry      float64
	Experience    float64
	Location      float64
	YearProximity float64
}

// Evaluate runs every criterion scorer for one candidate. It is pure: no
// I/O, no shared state, and the same inputs (including now) always yield
// the same subscores. Missing profile data degrades to neutral or zero
// values instead of failing.
func (e *Engine) Evaluate(seeker, candidate Member, prefs Preferences, now time.Time) Subscores {
	sub := Subscores{CandidateID: candidate.ID}

	sub.SkillsBase, sub.Skills, sub.SharedSkills = e.skillsScore(seeker.Skills, candidate.Skills, prefs.PreferredSkills)
	sub.Industry = e.industryScore(seeker.Organization, candidate.Organization, prefs.PreferredIndustries)
	sub.Experience = e.experienceGapScore(seeker.GraduationYear, candidate.GraduationYear, now)
	sub.Location = e.locationScore(seeker.Organization, candidate.Organization)
	sub.YearProximity = e.yearProximityScore(seeker.GraduationYear, candidate.GraduationYear, prefs.YearGapRange, now)

	return sub
}

// Combine folds the subscores into a single weighted score plus ordered
// reason codes. semanticBonus reports whether the external similarity
// provider cleared its threshold for this pair.
func (e *Engine) Combine(sub Subscores, semanticBonus bool) Match {
	w := e.weights
	sum := sub.Skills*w.Skills +
		sub.Industry*w.Industry +
		sub.Experience*w.Experience +
		sub.Location*w.Location +
		sub.YearProximity*w.YearProximity
	weightSum := w.sum()

	reasons := make([]string, 0, 6)
	if sub.SkillsBase > reasonThreshold && len(sub.SharedSkills) > 0 {
		reasons = append(reasons, fmt.Sprintf("shared skills: %s", strings.Join(sub.SharedSkills, ", ")))
	}
	if sub.Industry > reasonThreshold {
		reasons = append(reasons, ReasonIndustry)
	}
	if sub.Experience > reasonThreshold {
		reasons = append(reasons, ReasonExperienceGap)
	}
	if sub.Location > reasonThreshold {
		reasons = append(reasons, ReasonLocation)
	}
	if sub.YearProximity > reasonThreshold {
		reasons = append(reasons, ReasonYearProximity)
	}
	if semanticBonus {
		sum += semanticBonusValue
		weightSum += semanticBonusWeight
		reasons = append(reasons, ReasonSemanticSimilarity)
	}

	score := sum / weightSum
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	return Match{CandidateID: sub.CandidateID, Score: score, Reasons: reasons}
}

// skillsScore matches candidate skills against seeker skills by
// case-insensitive substring containment in either direction. The base is
// the matched count over the larger of the two skill sets; preferred skills
// that matched add a flat bonus each, capped at 1.0 overall.
func (e *Engine) skillsScore(seekerSkills, candidateSkills, preferred []string) (base, score float64, shared []string) {
	seeker := normalizeSkills(seekerSkills)
	candidate := normalizeSkills(candidateSkills)
	if len(seeker) == 0 || len(candidate) == 0 {
		return 0, 0, nil
	}

	matched := make([]string, 0, len(candidate))
	for _, cs := range candidate {
		for _, ss := range seeker {
			if strings.Contains(cs, ss) || strings.Contains(ss, cs) {
				matched = append(matched, cs)
				break
			}
		}
	}
	if len(matched) == 0 {
		return 0, 0, nil
	}
	sort.Strings(matched)

	denom := len(seeker)
	if len(candidate) > denom {
		denom = len(candidate)
	}
	base = float64(len(matched)) / float64(denom)

	bonus := 0.0
	prefSet := make(map[string]struct{}, len(preferred))
	for _, p := range normalizeSkills(preferred) {
		prefSet[p] = struct{}{}
	}
	for _, m := range matched {
		if _, ok := prefSet[m]; ok {
			bonus += preferredSkillBonus
		}
	}

	score = base + bonus
	if score > 1 {
		score = 1
	}
	return base, score, matched
}

// industryScore classifies both organizations against the industry
// vocabulary. Branch order follows preference strength: same industry beats
// a preferred-industry hit, which beats a mere both-classified pair.
func (e *Engine) industryScore(seekerOrg, candidateOrg string, preferredIndustries []string) float64 {
	seekerInd, seekerOK := e.industries.Classify(seekerOrg)
	candInd, candOK := e.industries.Classify(candidateOrg)

	if seekerOK && candOK && seekerInd == candInd {
		return 1.0
	}
	if seekerOK {
		for _, p := range preferredIndustries {
			if strings.EqualFold(strings.TrimSpace(p), seekerInd) {
				return 0.8
			}
		}
	}
	if seekerOK && candOK {
		return 0.5
	}
	return 0.3
}

// experienceGapScore rewards candidates meaningfully senior to, but not
// generationally distant from, the seeker. The gap is measured in years
// since graduation relative to now.
func (e *Engine) experienceGapScore(seekerYear, candidateYear *int, now time.Time) float64 {
	if seekerYear == nil || candidateYear == nil {
		return neutralScore
	}
	gap := yearsSinceGap(*seekerYear, *candidateYear, now)
	switch {
	case gap >= 3 && gap <= 8:
		return 1.0
	case gap >= 1 && gap <= 12:
		return 0.8
	case gap <= 15:
		return 0.6
	default:
		return 0.3
	}
}

func (e *Engine) locationScore(seekerOrg, candidateOrg string) float64 {
	if strings.TrimSpace(seekerOrg) == "" || strings.TrimSpace(candidateOrg) == "" {
		return neutralScore
	}
	seekerLoc, seekerOK := e.localities.Classify(seekerOrg)
	candLoc, candOK := e.localities.Classify(candidateOrg)
	if seekerOK && candOK {
		if seekerLoc == candLoc {
			return 1.0
		}
		return 0.6
	}
	return neutralScore
}

func (e *Engine) yearProximityScore(seekerYear, candidateYear *int, gapRange *YearGapRange, now time.Time) float64 {
	if seekerYear == nil || candidateYear == nil {
		return neutralScore
	}
	gap := yearsSinceGap(*seekerYear, *candidateYear, now)
	if gapRange != nil && gap >= gapRange.Min && gap <= gapRange.Max {
		return 1.0
	}
	switch {
	case gap >= 2 && gap <= 5:
		return 1.0
	case gap >= 1 && gap <= 8:
		return 0.8
	case gap <= 10:
		return 0.6
	default:
		return 0.3
	}
}

func yearsSinceGap(seekerYear, candidateYear int, now time.Time) int {
	seekerSince := now.Year() - seekerYear
	candidateSince := now.Year() - candidateYear
	gap := candidateSince - seekerSince
	if gap < 0 {
		gap = -gap
	}
	return gap
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
