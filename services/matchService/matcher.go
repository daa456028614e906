package matchService

import (
	"log"
	"strings"

	"parlayPilot/models"
)

// Matcher decides whether two free-text team names refer to the same team.
// Spellings that are present in the team_aliases table are compared by their
// stable key; everything else falls back to normalized text comparison, which
// tolerates city+mascot vs. mascot-only spellings ("Kansas City Chiefs" vs
// "Chiefs") but can false-positive on short overlapping names. Callers must
// constrain candidates by sport and date before asking the matcher.
type Matcher struct {
	aliases map[string]string // sport|normalized spelling -> team key
}

func NewMatcher(aliases []models.TeamAlias) *Matcher {
	index := make(map[string]string, len(aliases))
	for _, alias := range aliases {
		index[aliasKey(alias.Sport, Normalize(alias.Alias))] = alias.TeamKey
	}
	return &Matcher{aliases: index}
}

func aliasKey(sport, spelling string) string {
	return strings.ToLower(sport) + "|" + spelling
}

// Normalize lowercases, trims, and collapses internal whitespace.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Matches reports whether nameA and nameB refer to the same team within a
// sport. When both spellings are known aliases the mapped keys decide;
// otherwise the fuzzy text path is used and logged when it produces a match,
// so unmapped spellings can be reviewed and added to the alias table.
func (m *Matcher) Matches(sport, nameA, nameB string) bool {
	a := Normalize(nameA)
	b := Normalize(nameB)
	if a == "" || b == "" {
		return false
	}

	keyA, okA := m.aliases[aliasKey(sport, a)]
	keyB, okB := m.aliases[aliasKey(sport, b)]
	if okA && okB {
		return keyA == keyB
	}

	if a == b {
		return true
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		log.Printf("[matcher] fuzzy match %q ~ %q (%s) - consider adding aliases", nameA, nameB, sport)
		return true
	}

	return false
}
