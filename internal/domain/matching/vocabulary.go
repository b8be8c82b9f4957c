package matching

import "strings"

// VocabularyEntry pairs a lowercase keyword with the category it maps to.
type VocabularyEntry struct {
	Keyword  string
	Category string
}

// Vocabulary is an ordered keyword table used to classify free text by
// substring containment. Order matters: the first matching keyword wins,
// so more specific keywords belong earlier in the list.
type Vocabulary []VocabularyEntry

func (v Vocabulary) Classify(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return "", false
	}
	for _, e := range v {
		if strings.Contains(t, e.Keyword) {
			return e.Category, true
		}
	}
	return "", false
}

func DefaultIndustryVocabulary() Vocabulary {
	return Vocabulary{
		{Keyword: "fintech", Category: "finance"},
		{Keyword: "tech", Category: "technology"},
		{Keyword: "software", Category: "technology"},
		{Keyword: "saas", Category: "technology"},
		{Keyword: "startup", Category: "technology"},
		{Keyword: "bank", Category: "finance"},
		{Keyword: "capital", Category: "finance"},
		{Keyword: "finance", Category: "finance"},
		{Keyword: "insurance", Category: "finance"},
		{Keyword: "health", Category: "healthcare"},
		{Keyword: "hospital", Category: "healthcare"},
		{Keyword: "pharma", Category: "healthcare"},
		{Keyword: "medic", Category: "healthcare"},
		{Keyword: "universit", Category: "education"},
		{Keyword: "school", Category: "education"},
		{Keyword: "college", Category: "education"},
		{Keyword: "academ", Category: "education"},
		{Keyword: "educat", Category: "education"},
		{Keyword: "consult", Category: "consulting"},
		{Keyword: "advisory", Category: "consulting"},
		{Keyword: "manufactur", Category: "manufacturing"},
		{Keyword: "factory", Category: "manufacturing"},
		{Keyword: "industrial", Category: "manufacturing"},
		{Keyword: "retail", Category: "retail"},
		{Keyword: "commerce", Category: "retail"},
		{Keyword: "store", Category: "retail"},
	}
}

func DefaultLocalityVocabulary() Vocabulary {
	localities := []string{
		"new york",
		"san francisco",
		"seattle",
		"austin",
		"boston",
		"chicago",
		"london",
		"berlin",
		"amsterdam",
		"toronto",
		"singapore",
		"sydney",
		"jakarta",
		"bangalore",
		"remote",
	}
	v := make(Vocabulary, 0, len(localities))
	for _, l := range localities {
		v = append(v, VocabularyEntry{Keyword: l, Category: l})
	}
	return v
}
