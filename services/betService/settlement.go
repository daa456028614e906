package betService

import (
	"fmt"
	"strings"

	"parlayPilot/models"
	"parlayPilot/services/matchService"
)

// SettleLeg applies the bet-type rules to a final score and returns "won",
// "lost", or "push". It never touches storage. Malformed leg data (missing
// line, pick that matches neither or both sides) is returned as an error so
// the caller can leave the leg pending rather than settle it incorrectly.
func SettleLeg(leg models.BetLeg, result models.GameResult, matcher *matchService.Matcher) (string, error) {
	switch leg.BetType {
	case models.BetTypeMoneyline:
		return settleMoneyline(leg, result, matcher)
	case models.BetTypeSpread:
		return settleSpread(leg, result, matcher)
	case models.BetTypeTotal:
		return settleTotal(leg, result)
	default:
		return "", fmt.Errorf("leg %d has unknown bet type %q", leg.ID, leg.BetType)
	}
}

func settleMoneyline(leg models.BetLeg, result models.GameResult, matcher *matchService.Matcher) (string, error) {
	if result.HomeScore == result.AwayScore {
		return models.OutcomePush, nil
	}

	pickedHome, err := pickedSide(leg, result, matcher)
	if err != nil {
		return "", err
	}

	homeWon := result.HomeScore > result.AwayScore
	if pickedHome == homeWon {
		return models.OutcomeWon, nil
	}
	return models.OutcomeLost, nil
}

func settleSpread(leg models.BetLeg, result models.GameResult, matcher *matchService.Matcher) (string, error) {
	if leg.Line == nil {
		return "", fmt.Errorf("spread leg %d has no line", leg.ID)
	}

	pickedHome, err := pickedSide(leg, result, matcher)
	if err != nil {
		return "", err
	}

	// Line is the signed spread assigned to the picked side (negative for
	// favorites). The pick covers when its margin plus the line is positive.
	margin := result.AwayScore - result.HomeScore
	if pickedHome {
		margin = result.HomeScore - result.AwayScore
	}

	adjusted := float64(margin) + *leg.Line
	switch {
	case adjusted > 0:
		return models.OutcomeWon, nil
	case adjusted < 0:
		return models.OutcomeLost, nil
	default:
		return models.OutcomePush, nil
	}
}

func settleTotal(leg models.BetLeg, result models.GameResult) (string, error) {
	if leg.Line == nil {
		return "", fmt.Errorf("total leg %d has no line", leg.ID)
	}

	over, err := parseTotalPick(leg.Pick)
	if err != nil {
		return "", fmt.Errorf("total leg %d: %v", leg.ID, err)
	}

	actual := float64(result.HomeScore + result.AwayScore)
	line := *leg.Line
	if actual == line {
		return models.OutcomePush, nil
	}

	if (actual > line) == over {
		return models.OutcomeWon, nil
	}
	return models.OutcomeLost, nil
}

// pickedSide resolves the leg's pick to the home (true) or away (false) team
// using the paired team names from the matched result. A pick that matches
// both sides or neither is malformed data.
func pickedSide(leg models.BetLeg, result models.GameResult, matcher *matchService.Matcher) (bool, error) {
	home := matcher.Matches(leg.Sport, leg.Pick, result.HomeTeam)
	away := matcher.Matches(leg.Sport, leg.Pick, result.AwayTeam)

	if home && away {
		return false, fmt.Errorf("leg %d pick %q matches both teams", leg.ID, leg.Pick)
	}
	if !home && !away {
		return false, fmt.Errorf("leg %d pick %q matches neither team", leg.ID, leg.Pick)
	}
	return home, nil
}

func parseTotalPick(pick string) (over bool, err error) {
	switch strings.ToLower(strings.TrimSpace(pick)) {
	case "over", "o":
		return true, nil
	case "under", "u":
		return false, nil
	default:
		return false, fmt.Errorf("pick %q is not over/under", pick)
	}
}
