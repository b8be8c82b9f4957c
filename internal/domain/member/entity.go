package member

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is a person eligible to act as a seeker or a candidate. The
// matching service only ever reads profiles; writes happen elsewhere.
type Profile struct {
	ID                   uuid.UUID
	DisplayName          string
	Skills               []string
	CurrentRole          *string
	CurrentOrganization  *string
	GraduationYear       *int
	Bio                  *string
	AvailableAsCandidate bool
	ScopeID              uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (p Profile) Organization() string {
	if p.CurrentOrganization == nil {
		return ""
	}
	return strings.TrimSpace(*p.CurrentOrganization)
}

func (p Profile) Role() string {
	if p.CurrentRole == nil {
		return ""
	}
	return strings.TrimSpace(*p.CurrentRole)
}

// Excerpt returns a short free-text description of the member, used as
// input for semantic similarity. Bio wins when present; otherwise role and
// organization are joined. The result is truncated to limit runes.
func (p Profile) Excerpt(limit int) string {
	text := ""
	if p.Bio != nil {
		text = strings.TrimSpace(*p.Bio)
	}
	if text == "" {
		parts := make([]string, 0, 2)
		if r := p.Role(); r != "" {
			parts = append(parts, r)
		}
		if o := p.Organization(); o != "" {
			parts = append(parts, o)
		}
		text = strings.Join(parts, " at ")
	}
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
