package betService

import (
	"strings"
	"time"

	"parlayPilot/models"
	"parlayPilot/services/matchService"
)

// FindResult picks the single game result a leg refers to out of the fetched
// candidates. Candidates are narrowed to the leg's sport and calendar date
// first, then both team names must match pairwise (home-to-home and
// away-to-away). Zero matches or more than one means the leg is not
// resolvable from this fetch — the engine never guesses.
func FindResult(leg models.BetLeg, candidates []models.GameResult, matcher *matchService.Matcher) (*models.GameResult, bool) {
	legDate := dateKey(leg.GameDate)

	var found *models.GameResult
	for i := range candidates {
		candidate := &candidates[i]
		if !strings.EqualFold(candidate.Sport, leg.Sport) {
			continue
		}
		if dateKey(candidate.GameDate) != legDate {
			continue
		}
		if !matcher.Matches(leg.Sport, leg.HomeTeam, candidate.HomeTeam) {
			continue
		}
		if !matcher.Matches(leg.Sport, leg.AwayTeam, candidate.AwayTeam) {
			continue
		}

		if found != nil {
			// Ambiguous - two candidates matched the same leg.
			return nil, false
		}
		found = candidate
	}

	if found == nil {
		return nil, false
	}
	return found, true
}

func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
