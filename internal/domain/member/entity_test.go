package member

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestProfile_Excerpt(t *testing.T) {
	t.Run("bio wins", func(t *testing.T) {
		p := Profile{
			Bio:                 strPtr("  data engineer who loves teaching  "),
			CurrentRole:         strPtr("engineer"),
			CurrentOrganization: strPtr("Acme"),
		}
		if got := p.Excerpt(400); got != "data engineer who loves teaching" {
			t.Fatalf("unexpected excerpt: %q", got)
		}
	})

	t.Run("role and organization fallback", func(t *testing.T) {
		p := Profile{
			CurrentRole:         strPtr("engineer"),
			CurrentOrganization: strPtr("Acme"),
		}
		if got := p.Excerpt(400); got != "engineer at Acme" {
			t.Fatalf("unexpected excerpt: %q", got)
		}
	})

	t.Run("organization only", func(t *testing.T) {
		p := Profile{CurrentOrganization: strPtr("Acme")}
		if got := p.Excerpt(400); got != "Acme" {
			t.Fatalf("unexpected excerpt: %q", got)
		}
	})

	t.Run("empty profile yields empty excerpt", func(t *testing.T) {
		if got := (Profile{}).Excerpt(400); got != "" {
			t.Fatalf("expected empty excerpt, got %q", got)
		}
	})

	t.Run("truncates by runes", func(t *testing.T) {
		p := Profile{Bio: strPtr(strings.Repeat("é", 500))}
		got := p.Excerpt(10)
		if len([]rune(got)) != 10 {
			t.Fatalf("expected 10 runes, got %d", len([]rune(got)))
		}
	})

	t.Run("non-positive limit", func(t *testing.T) {
		p := Profile{Bio: strPtr("something")}
		if got := p.Excerpt(0); got != "" {
			t.Fatalf("expected empty excerpt, got %q", got)
		}
	})
}
