package betService

import (
	"testing"

	"parlayPilot/models"
	"parlayPilot/services/matchService"
)

func floatPtr(f float64) *float64 {
	return &f
}

func nflResult(homeScore, awayScore int) models.GameResult {
	return models.GameResult{
		EventID:   "401",
		Sport:     "nfl",
		HomeTeam:  "Denver Broncos",
		AwayTeam:  "Kansas City Chiefs",
		HomeScore: homeScore,
		AwayScore: awayScore,
		Status:    models.GameStatusFinal,
	}
}

func TestSettleLeg(t *testing.T) {
	matcher := matchService.NewMatcher(nil)

	tests := []struct {
		name     string
		leg      models.BetLeg
		result   models.GameResult
		expected string
		scenario string
	}{
		{
			name:     "Moneyline home pick wins",
			leg:      models.BetLeg{BetType: models.BetTypeMoneyline, Sport: "nfl", Pick: "Denver Broncos"},
			result:   nflResult(27, 24),
			expected: models.OutcomeWon,
			scenario: "Home wins 27-24, picked home",
		},
		{
			name:     "Moneyline away pick loses",
			leg:      models.BetLeg{BetType: models.BetTypeMoneyline, Sport: "nfl", Pick: "Kansas City Chiefs"},
			result:   nflResult(27, 24),
			expected: models.OutcomeLost,
			scenario: "Home wins 27-24, picked away",
		},
		{
			name:     "Moneyline mascot-only pick wins",
			leg:      models.BetLeg{BetType: models.BetTypeMoneyline, Sport: "nfl", Pick: "Chiefs"},
			result:   nflResult(20, 23),
			expected: models.OutcomeWon,
			scenario: "Away wins, pick spelled mascot-only",
		},
		{
			name:     "Moneyline tie pushes",
			leg:      models.BetLeg{BetType: models.BetTypeMoneyline, Sport: "nfl", Pick: "Denver Broncos"},
			result:   nflResult(21, 21),
			expected: models.OutcomePush,
			scenario: "Equal scores push regardless of pick",
		},
		{
			name:     "Spread underdog covers by half point",
			leg:      models.BetLeg{BetType: models.BetTypeSpread, Sport: "nfl", Pick: "Denver Broncos", Line: floatPtr(3.5)},
			result:   nflResult(20, 23),
			expected: models.OutcomeWon,
			scenario: "(20-23)+3.5 = 0.5 > 0",
		},
		{
			name:     "Spread favorite fails to cover",
			leg:      models.BetLeg{BetType: models.BetTypeSpread, Sport: "nfl", Pick: "Denver Broncos", Line: floatPtr(-7.5)},
			result:   nflResult(27, 24),
			expected: models.OutcomeLost,
			scenario: "(27-24)-7.5 = -4.5 < 0",
		},
		{
			name:     "Spread away side covers",
			leg:      models.BetLeg{BetType: models.BetTypeSpread, Sport: "nfl", Pick: "Kansas City Chiefs", Line: floatPtr(-2.5)},
			result:   nflResult(20, 23),
			expected: models.OutcomeWon,
			scenario: "(23-20)-2.5 = 0.5 > 0",
		},
		{
			name:     "Spread exact margin pushes home side",
			leg:      models.BetLeg{BetType: models.BetTypeSpread, Sport: "nfl", Pick: "Denver Broncos", Line: floatPtr(-3.0)},
			result:   nflResult(27, 24),
			expected: models.OutcomePush,
			scenario: "(27-24)-3.0 = 0",
		},
		{
			name:     "Spread exact margin pushes away side",
			leg:      models.BetLeg{BetType: models.BetTypeSpread, Sport: "nfl", Pick: "Kansas City Chiefs", Line: floatPtr(3.0)},
			result:   nflResult(27, 24),
			expected: models.OutcomePush,
			scenario: "(24-27)+3.0 = 0, push is side-independent",
		},
		{
			name:     "Total over exact pushes",
			leg:      models.BetLeg{BetType: models.BetTypeTotal, Sport: "nfl", Pick: "Over", Line: floatPtr(27.0)},
			result:   nflResult(14, 13),
			expected: models.OutcomePush,
			scenario: "14+13 = 27 == line",
		},
		{
			name:     "Total under exact pushes",
			leg:      models.BetLeg{BetType: models.BetTypeTotal, Sport: "nfl", Pick: "Under", Line: floatPtr(27.0)},
			result:   nflResult(14, 13),
			expected: models.OutcomePush,
			scenario: "Push regardless of over/under side",
		},
		{
			name:     "Total over clears line",
			leg:      models.BetLeg{BetType: models.BetTypeTotal, Sport: "nfl", Pick: "Over", Line: floatPtr(44.5)},
			result:   nflResult(27, 24),
			expected: models.OutcomeWon,
			scenario: "51 > 44.5",
		},
		{
			name:     "Total under beats line",
			leg:      models.BetLeg{BetType: models.BetTypeTotal, Sport: "nfl", Pick: "under", Line: floatPtr(51.5)},
			result:   nflResult(27, 24),
			expected: models.OutcomeWon,
			scenario: "51 < 51.5, pick parsed case-insensitively",
		},
		{
			name:     "Total over misses line",
			leg:      models.BetLeg{BetType: models.BetTypeTotal, Sport: "nfl", Pick: "Over", Line: floatPtr(51.5)},
			result:   nflResult(27, 24),
			expected: models.OutcomeLost,
			scenario: "51 < 51.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SettleLeg(tt.leg, tt.result, matcher)
			if err != nil {
				t.Fatalf("unexpected error: %v (%s)", err, tt.scenario)
			}
			if got != tt.expected {
				t.Errorf("got %q, expected %q: %s", got, tt.expected, tt.scenario)
			}
		})
	}
}

func TestSettleLeg_MoneylineNeverPushesOnDecidedGames(t *testing.T) {
	matcher := matchService.NewMatcher(nil)

	scores := [][2]int{{27, 24}, {0, 1}, {45, 3}, {13, 14}}
	for _, s := range scores {
		for _, pick := range []string{"Denver Broncos", "Kansas City Chiefs"} {
			leg := models.BetLeg{BetType: models.BetTypeMoneyline, Sport: "nfl", Pick: pick}
			got, err := SettleLeg(leg, nflResult(s[0], s[1]), matcher)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != models.OutcomeWon && got != models.OutcomeLost {
				t.Errorf("score %d-%d pick %q: got %q, expected won or lost", s[0], s[1], pick, got)
			}
		}
	}
}

func TestSettleLeg_MalformedData(t *testing.T) {
	matcher := matchService.NewMatcher(nil)

	tests := []struct {
		name string
		leg  models.BetLeg
	}{
		{
			name: "Spread without line",
			leg:  models.BetLeg{BetType: models.BetTypeSpread, Sport: "nfl", Pick: "Denver Broncos"},
		},
		{
			name: "Total without line",
			leg:  models.BetLeg{BetType: models.BetTypeTotal, Sport: "nfl", Pick: "Over"},
		},
		{
			name: "Total with team name pick",
			leg:  models.BetLeg{BetType: models.BetTypeTotal, Sport: "nfl", Pick: "Denver Broncos", Line: floatPtr(44.5)},
		},
		{
			name: "Pick matching neither team",
			leg:  models.BetLeg{BetType: models.BetTypeMoneyline, Sport: "nfl", Pick: "Chicago Bears"},
		},
		{
			name: "Unknown bet type",
			leg:  models.BetLeg{BetType: "prop", Sport: "nfl", Pick: "Denver Broncos"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SettleLeg(tt.leg, nflResult(27, 24), matcher); err == nil {
				t.Error("expected a malformed-data error, got none")
			}
		})
	}
}
