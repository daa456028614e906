package betService

import (
	"testing"
	"time"

	"parlayPilot/models"
	"parlayPilot/services/matchService"
)

func TestFindResult(t *testing.T) {
	matcher := matchService.NewMatcher(nil)
	gameDay := time.Date(2025, 11, 22, 17, 0, 0, 0, time.UTC)

	leg := models.BetLeg{
		Sport:    "cfb",
		GameDate: gameDay,
		HomeTeam: "Michigan Wolverines",
		AwayTeam: "Ohio State Buckeyes",
	}

	t.Run("unique match found", func(t *testing.T) {
		candidates := []models.GameResult{
			{Sport: "cfb", GameDate: gameDay, HomeTeam: "Michigan", AwayTeam: "Ohio State", EventID: "1"},
			{Sport: "cfb", GameDate: gameDay, HomeTeam: "USC Trojans", AwayTeam: "UCLA Bruins", EventID: "2"},
		}
		result, ok := FindResult(leg, candidates, matcher)
		if !ok {
			t.Fatal("expected a match")
		}
		if result.EventID != "1" {
			t.Errorf("matched event %s, expected 1", result.EventID)
		}
	})

	t.Run("wrong sport filtered out", func(t *testing.T) {
		candidates := []models.GameResult{
			{Sport: "cbb", GameDate: gameDay, HomeTeam: "Michigan", AwayTeam: "Ohio State"},
		}
		if _, ok := FindResult(leg, candidates, matcher); ok {
			t.Error("candidate from another sport must not match")
		}
	})

	t.Run("wrong date filtered out", func(t *testing.T) {
		candidates := []models.GameResult{
			{Sport: "cfb", GameDate: gameDay.AddDate(0, 0, 1), HomeTeam: "Michigan", AwayTeam: "Ohio State"},
		}
		if _, ok := FindResult(leg, candidates, matcher); ok {
			t.Error("candidate from another day must not match")
		}
	})

	t.Run("swapped home and away does not match", func(t *testing.T) {
		candidates := []models.GameResult{
			{Sport: "cfb", GameDate: gameDay, HomeTeam: "Ohio State", AwayTeam: "Michigan"},
		}
		if _, ok := FindResult(leg, candidates, matcher); ok {
			t.Error("sides must match pairwise, not as a set")
		}
	})

	t.Run("no candidates is not an error", func(t *testing.T) {
		if _, ok := FindResult(leg, nil, matcher); ok {
			t.Error("empty candidate list must return no match")
		}
	})

	t.Run("ambiguous match returns none", func(t *testing.T) {
		// The substring heuristic makes "State" match multiple schools on
		// the same slate. The lookup must refuse to guess.
		ambiguous := models.BetLeg{
			Sport:    "cfb",
			GameDate: gameDay,
			HomeTeam: "State",
			AwayTeam: "Tech",
		}
		candidates := []models.GameResult{
			{Sport: "cfb", GameDate: gameDay, HomeTeam: "Ohio State", AwayTeam: "Virginia Tech", EventID: "1"},
			{Sport: "cfb", GameDate: gameDay, HomeTeam: "Oklahoma State", AwayTeam: "Georgia Tech", EventID: "2"},
		}
		if _, ok := FindResult(ambiguous, candidates, matcher); ok {
			t.Error("two matching candidates must resolve to none, not an arbitrary pick")
		}
	})
}
