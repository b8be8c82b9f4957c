package matching

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEngine_SkillsOnlyPair(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	seeker := Member{ID: uuid.New(), Skills: []string{"python", "sql"}}
	candidate := Member{ID: uuid.New(), Skills: []string{"python", "java"}}

	sub := e.Evaluate(seeker, candidate, Preferences{}, testNow)
	approx(t, sub.SkillsBase, 0.5)
	approx(t, sub.Industry, 0.3)
	approx(t, sub.Experience, 0.5)
	approx(t, sub.Location, 0.5)
	approx(t, sub.YearProximity, 0.5)

	m := e.Combine(sub, false)
	approx(t, m.Score, 0.45)

	// Base overlap of exactly one half does not clear the reason threshold.
	if len(m.Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", m.Reasons)
	}
}

func TestEngine_SkillsScore(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	t.Run("empty either side", func(t *testing.T) {
		base, score, shared := e.skillsScore(nil, []string{"go"}, nil)
		if base != 0 || score != 0 || shared != nil {
			t.Fatalf("expected zeros, got base=%v score=%v shared=%v", base, score, shared)
		}
		base, score, _ = e.skillsScore([]string{"go"}, nil, nil)
		if base != 0 || score != 0 {
			t.Fatalf("expected zeros, got base=%v score=%v", base, score)
		}
	})

	t.Run("substring containment matches", func(t *testing.T) {
		base, _, shared := e.skillsScore([]string{"Python"}, []string{"python scripting"}, nil)
		approx(t, base, 1.0)
		if len(shared) != 1 || shared[0] != "python scripting" {
			t.Fatalf("unexpected shared skills: %v", shared)
		}
	})

	t.Run("preferred skill bonus capped at one", func(t *testing.T) {
		skills := []string{"go", "sql", "docker", "redis", "kafka"}
		_, score, _ := e.skillsScore(skills, skills, skills)
		approx(t, score, 1.0)
	})

	t.Run("denominator is the larger set", func(t *testing.T) {
		base, _, _ := e.skillsScore([]string{"go"}, []string{"go", "sql", "docker", "redis"}, nil)
		approx(t, base, 0.25)
	})

	t.Run("duplicates and blanks are dropped", func(t *testing.T) {
		base, _, _ := e.skillsScore([]string{"go", " GO ", ""}, []string{"go"}, nil)
		approx(t, base, 1.0)
	})
}

func TestEngine_IndustryScore(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	t.Run("same industry", func(t *testing.T) {
		approx(t, e.industryScore("Acme Software", "Globex Tech Labs", nil), 1.0)
	})
	t.Run("seeker industry preferred", func(t *testing.T) {
		approx(t, e.industryScore("First National Bank", "Unclassifiable Org", []string{"Finance"}), 0.8)
	})
	t.Run("both classified but different", func(t *testing.T) {
		approx(t, e.industryScore("Acme Software", "City Hospital", nil), 0.5)
	})
	t.Run("neither classified", func(t *testing.T) {
		approx(t, e.industryScore("Mystery Org", "Another Org", nil), 0.3)
	})
	t.Run("fintech is finance before technology", func(t *testing.T) {
		approx(t, e.industryScore("Fintech Payments Co", "Capital Insurance Group", nil), 1.0)
	})
}

func TestEngine_ExperienceGapScore(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	t.Run("missing year is neutral", func(t *testing.T) {
		approx(t, e.experienceGapScore(nil, intPtr(2015), testNow), 0.5)
		approx(t, e.experienceGapScore(intPtr(2015), nil, testNow), 0.5)
	})

	cases := []struct {
		name                 string
		seekerYear, candYear int
		want                 float64
	}{
		{"sweet spot gap", 2020, 2015, 1.0},
		{"small gap", 2020, 2019, 0.8},
		{"large but tolerable gap", 2020, 2006, 0.6},
		{"generational gap", 2020, 2000, 0.3},
		{"gap is symmetric", 2015, 2020, 1.0},
		{"zero gap", 2020, 2020, 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			approx(t, e.experienceGapScore(intPtr(tc.seekerYear), intPtr(tc.candYear), testNow), tc.want)
		})
	}
}

func TestEngine_LocationScore(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	t.Run("blank org is neutral", func(t *testing.T) {
		approx(t, e.locationScore("", "Acme Jakarta"), 0.5)
	})
	t.Run("same locality", func(t *testing.T) {
		approx(t, e.locationScore("Acme Jakarta Office", "Globex Jakarta HQ"), 1.0)
	})
	t.Run("different localities", func(t *testing.T) {
		approx(t, e.locationScore("Acme Jakarta", "Globex Singapore"), 0.6)
	})
	t.Run("unclassified is neutral", func(t *testing.T) {
		approx(t, e.locationScore("Acme Corp", "Globex Corp"), 0.5)
	})
}

func TestEngine_YearProximityScore(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	t.Run("preference range overrides tiers", func(t *testing.T) {
		r := &YearGapRange{Min: 10, Max: 20}
		approx(t, e.yearProximityScore(intPtr(2020), intPtr(2005), r, testNow), 1.0)
	})
	t.Run("tiers without preference", func(t *testing.T) {
		approx(t, e.yearProximityScore(intPtr(2020), intPtr(2017), nil, testNow), 1.0)
		approx(t, e.yearProximityScore(intPtr(2020), intPtr(2013), nil, testNow), 0.8)
		approx(t, e.yearProximityScore(intPtr(2020), intPtr(2010), nil, testNow), 0.6)
		approx(t, e.yearProximityScore(intPtr(2020), intPtr(2005), nil, testNow), 0.3)
	})
	t.Run("missing year is neutral", func(t *testing.T) {
		approx(t, e.yearProximityScore(nil, intPtr(2015), &YearGapRange{Min: 0, Max: 5}, testNow), 0.5)
	})
}

func TestEngine_CombineReasons(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	sub := Subscores{
		CandidateID:   uuid.New(),
		Skills:        0.9,
		SkillsBase:    0.75,
		SharedSkills:  []string{"go", "sql"},
		Industry:      1.0,
		Experience:    1.0,
		Location:      1.0,
		YearProximity: 1.0,
	}

	m := e.Combine(sub, true)
	want := []string{
		"shared skills: go, sql",
		ReasonIndustry,
		ReasonExperienceGap,
		ReasonLocation,
		ReasonYearProximity,
		ReasonSemanticSimilarity,
	}
	if len(m.Reasons) != len(want) {
		t.Fatalf("expected %d reasons, got %v", len(want), m.Reasons)
	}
	for i := range want {
		if m.Reasons[i] != want[i] {
			t.Fatalf("reason %d: expected %q, got %q", i, want[i], m.Reasons[i])
		}
	}
}

func TestEngine_SemanticBonusChangesDenominator(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	sub := Subscores{
		CandidateID:   uuid.New(),
		Skills:        0.0,
		Industry:      0.3,
		Experience:    0.5,
		Location:      0.5,
		YearProximity: 0.5,
	}

	plain := e.Combine(sub, false)
	boosted := e.Combine(sub, true)

	// 0.25 raw; with the bonus both numerator and weight sum grow.
	approx(t, plain.Score, 0.25)
	approx(t, boosted.Score, (0.25+0.1)/1.1)
	if boosted.Score <= plain.Score {
		t.Fatalf("bonus should raise a low score: plain=%v boosted=%v", plain.Score, boosted.Score)
	}
	if len(boosted.Reasons) != 1 || boosted.Reasons[0] != ReasonSemanticSimilarity {
		t.Fatalf("unexpected reasons: %v", boosted.Reasons)
	}
}

func TestEngine_ScoreStaysInRange(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	subs := []Subscores{
		{},
		{Skills: 1, SkillsBase: 1, Industry: 1, Experience: 1, Location: 1, YearProximity: 1},
		{Skills: 1, SkillsBase: 1, Industry: 1, Experience: 1, Location: 1, YearProximity: 1, SharedSkills: []string{"go"}},
	}
	for _, sub := range subs {
		for _, bonus := range []bool{false, true} {
			m := e.Combine(sub, bonus)
			if m.Score < 0 || m.Score > 1 {
				t.Fatalf("score out of range: %v (bonus=%v)", m.Score, bonus)
			}
		}
	}
}

func TestEngine_MonotonicityOnAddedSharedSkill(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	seeker := Member{ID: uuid.New(), Skills: []string{"go", "sql", "docker"}}
	before := Member{ID: uuid.New(), Skills: []string{"go", "rust"}}
	after := Member{ID: before.ID, Skills: []string{"go", "rust", "sql"}}

	mBefore := e.Combine(e.Evaluate(seeker, before, Preferences{}, testNow), false)
	mAfter := e.Combine(e.Evaluate(seeker, after, Preferences{}, testNow), false)

	if mAfter.Score < mBefore.Score {
		t.Fatalf("adding a shared skill decreased the score: %v -> %v", mBefore.Score, mAfter.Score)
	}
}

func TestEngine_EvaluateIsDeterministic(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil, nil)

	seeker := Member{ID: uuid.New(), Skills: []string{"go", "sql"}, Organization: "Acme Software Jakarta", GraduationYear: intPtr(2018)}
	candidate := Member{ID: uuid.New(), Skills: []string{"go", "python"}, Organization: "Globex Tech Jakarta", GraduationYear: intPtr(2014)}
	prefs := Preferences{PreferredSkills: []string{"go"}, PreferredIndustries: []string{"technology"}}

	first := e.Combine(e.Evaluate(seeker, candidate, prefs, testNow), false)
	for i := 0; i < 10; i++ {
		again := e.Combine(e.Evaluate(seeker, candidate, prefs, testNow), false)
		if again.Score != first.Score || len(again.Reasons) != len(first.Reasons) {
			t.Fatalf("run %d diverged: %v vs %v", i, again, first)
		}
	}
}
