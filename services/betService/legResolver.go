package betService

import (
	"os"
	"strconv"
	"time"

	"parlayPilot/models"
	"parlayPilot/services/matchService"
)

// defaultGraceWindow is how long after kickoff a leg stays ineligible for
// lookup, giving the feed time to mark the game final before we start
// churning on "not found".
const defaultGraceWindow = 4 * time.Hour

// GraceWindow returns the eligibility window, honoring the
// RESOLUTION_GRACE_HOURS override.
func GraceWindow() time.Duration {
	raw := os.Getenv("RESOLUTION_GRACE_HOURS")
	if raw == "" {
		return defaultGraceWindow
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours < 0 {
		return defaultGraceWindow
	}
	return time.Duration(hours) * time.Hour
}

// LegOutcome is the result of resolving a single leg, carrying the matched
// game for auditing. Persistence is the run controller's job.
type LegOutcome struct {
	LegID   uint
	Outcome string
	Result  models.GameResult
}

// LegEligible reports whether the leg's game is old enough to be worth
// looking up.
func LegEligible(leg models.BetLeg, asOf time.Time, grace time.Duration) bool {
	return !asOf.Before(leg.GameDate.Add(grace))
}

// ResolveLeg decides a single pending leg against the fetched results for its
// (sport, date) group. A nil outcome with a nil error means "not resolvable
// yet" - the leg stays pending and is retried on the next run. An error means
// the leg's own data is malformed and settling it would be guesswork.
func ResolveLeg(leg models.BetLeg, candidates []models.GameResult, matcher *matchService.Matcher, asOf time.Time, grace time.Duration) (*LegOutcome, error) {
	if !LegEligible(leg, asOf, grace) {
		return nil, nil
	}

	result, ok := FindResult(leg, candidates, matcher)
	if !ok {
		return nil, nil
	}
	if !result.Final() {
		return nil, nil
	}

	outcome, err := SettleLeg(leg, *result, matcher)
	if err != nil {
		return nil, err
	}

	return &LegOutcome{
		LegID:   leg.ID,
		Outcome: outcome,
		Result:  *result,
	}, nil
}
