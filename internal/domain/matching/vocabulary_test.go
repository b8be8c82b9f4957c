package matching

import "testing"

func TestVocabulary_Classify(t *testing.T) {
	v := Vocabulary{
		{Keyword: "fintech", Category: "finance"},
		{Keyword: "tech", Category: "technology"},
	}

	t.Run("first matching keyword wins", func(t *testing.T) {
		cat, ok := v.Classify("Fintech Startup Labs")
		if !ok || cat != "finance" {
			t.Fatalf("expected finance, got %q ok=%v", cat, ok)
		}
	})

	t.Run("case insensitive substring", func(t *testing.T) {
		cat, ok := v.Classify("BIGTECH HOLDINGS")
		if !ok || cat != "technology" {
			t.Fatalf("expected technology, got %q ok=%v", cat, ok)
		}
	})

	t.Run("blank text never classifies", func(t *testing.T) {
		if _, ok := v.Classify("   "); ok {
			t.Fatal("expected no classification for blank text")
		}
	})

	t.Run("no keyword match", func(t *testing.T) {
		if _, ok := v.Classify("Ordinary Holdings"); ok {
			t.Fatal("expected no classification")
		}
	})
}

func TestDefaultVocabularies(t *testing.T) {
	ind := DefaultIndustryVocabulary()
	if cat, ok := ind.Classify("University of Somewhere"); !ok || cat != "education" {
		t.Fatalf("expected education, got %q ok=%v", cat, ok)
	}

	loc := DefaultLocalityVocabulary()
	if cat, ok := loc.Classify("Acme Singapore Pte Ltd"); !ok || cat != "singapore" {
		t.Fatalf("expected singapore, got %q ok=%v", cat, ok)
	}
}
