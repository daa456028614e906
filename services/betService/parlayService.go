package betService

import (
	"parlayPilot/models"
	"parlayPilot/services/common"
)

// ParlayOutcome is the aggregate decision for one parlay after a run.
type ParlayOutcome struct {
	ParlayID   uint
	Status     string  // "pending", "win", "loss"
	Payout     float64 // stake times combined odds; zero unless Status is "win"
	ProfitLoss float64 // signed; zero while pending
}

// AggregateParlay combines a parlay's full current leg set into a single
// outcome. A single lost leg short-circuits the whole parlay to a loss even
// while siblings are still pending, since the combined bet can no longer win.
// Pushed legs never cause a loss; they drop out of the odds multiplication so
// an all-push parlay wins back exactly its stake. Terminal parlays are
// returned unchanged.
func AggregateParlay(parlay models.Parlay, legs []models.BetLeg) ParlayOutcome {
	if parlay.Terminal() {
		return ParlayOutcome{
			ParlayID:   parlay.ID,
			Status:     parlay.Status,
			ProfitLoss: parlay.ProfitLoss,
		}
	}

	allResolved := len(legs) > 0
	var wonOdds []int
	for _, leg := range legs {
		switch leg.Outcome {
		case models.OutcomeLost:
			return ParlayOutcome{
				ParlayID:   parlay.ID,
				Status:     models.ParlayStatusLoss,
				ProfitLoss: -float64(parlay.Amount),
			}
		case models.OutcomeWon:
			wonOdds = append(wonOdds, leg.Price)
		case models.OutcomePush:
			// Stake rides; leg drops out of the multiplier.
		default:
			allResolved = false
		}
	}

	if !allResolved {
		return ParlayOutcome{ParlayID: parlay.ID, Status: models.ParlayStatusPending}
	}

	multiplier := common.CalculateParlayOddsMultiplier(wonOdds)
	payout := common.CalculateParlayPayout(parlay.Amount, multiplier)
	return ParlayOutcome{
		ParlayID:   parlay.ID,
		Status:     models.ParlayStatusWin,
		Payout:     payout,
		ProfitLoss: payout - float64(parlay.Amount),
	}
}
