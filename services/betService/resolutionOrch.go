package betService

import (
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"parlayPilot/models"
	"parlayPilot/services/common"
	"parlayPilot/services/matchService"
)

// ScoreFeed is the external score provider contract. Implementations must be
// cheap to call repeatedly; an empty slice is a normal answer, not an error.
type ScoreFeed interface {
	GetResults(sport string, date time.Time) ([]models.GameResult, error)
}

// RunSummary reports what a single resolution pass did.
type RunSummary struct {
	LegsChecked     int
	LegsResolved    int
	ParlaysResolved int
	Warnings        []string
}

func (rs *RunSummary) warn(db *gorm.DB, err error) {
	rs.Warnings = append(rs.Warnings, err.Error())
	common.LogWarning(db, "resolution", err)
}

type resultGroup struct {
	Sport string
	Date  string
}

// RunResolution is the engine's single entry point: one idempotent pass over
// every pending leg whose parlay is still live. Legs are grouped by
// (sport, date) so each group's results are fetched exactly once; a failed
// fetch skips its group with a warning and the next scheduled run retries.
// All writes are conditional on the row still being pending, so an overlapping
// run cannot double-resolve a leg or double-pay a parlay. The session may be
// nil, in which case resolution notifications are skipped.
func RunResolution(s *discordgo.Session, db *gorm.DB, feed ScoreFeed, asOf time.Time) (summary *RunSummary, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in RunResolution", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in RunResolution: %v", r)
		}
	}()

	summary = &RunSummary{}

	var legs []models.BetLeg
	result := db.
		Joins("JOIN parlays ON parlays.id = bet_legs.parlay_id").
		Where("bet_legs.status = ? AND parlays.status = ?", models.LegStatusPending, models.ParlayStatusPending).
		Find(&legs)
	if result.Error != nil {
		return summary, result.Error
	}
	summary.LegsChecked = len(legs)

	var aliases []models.TeamAlias
	if aliasResult := db.Find(&aliases); aliasResult.Error != nil {
		summary.warn(db, fmt.Errorf("loading team aliases: %v", aliasResult.Error))
	}
	matcher := matchService.NewMatcher(aliases)

	grace := GraceWindow()
	groups := make(map[resultGroup][]models.BetLeg)
	for _, leg := range legs {
		if !LegEligible(leg, asOf, grace) {
			continue
		}
		key := resultGroup{Sport: strings.ToLower(leg.Sport), Date: dateKey(leg.GameDate)}
		groups[key] = append(groups[key], leg)
	}

	candidates := fetchGroups(db, feed, groups, summary)

	touched := make(map[uint]bool)
	for key, groupLegs := range groups {
		groupResults, fetched := candidates[key]
		if !fetched {
			continue
		}
		for _, leg := range groupLegs {
			outcome, resolveErr := ResolveLeg(leg, groupResults, matcher, asOf, grace)
			if resolveErr != nil {
				summary.warn(db, resolveErr)
				continue
			}
			if outcome == nil {
				continue
			}

			update := db.Model(&models.BetLeg{}).
				Where("id = ? AND status = ?", leg.ID, models.LegStatusPending).
				Updates(map[string]interface{}{
					"status":      models.LegStatusResolved,
					"outcome":     outcome.Outcome,
					"resolved_at": asOf,
				})
			if update.Error != nil {
				summary.warn(db, fmt.Errorf("updating leg %d: %v", leg.ID, update.Error))
				continue
			}

			// RowsAffected == 0 means a concurrent run already resolved this
			// leg. Not an error and not counted, but the parlay still needs
			// a fresh aggregation pass.
			if update.RowsAffected > 0 {
				summary.LegsResolved++
			}
			touched[leg.ParlayID] = true
		}
	}

	for parlayID := range touched {
		if settleErr := settleParlay(s, db, parlayID, summary); settleErr != nil {
			summary.warn(db, fmt.Errorf("settling parlay %d: %v", parlayID, settleErr))
		}
	}

	log.Printf("[resolution] checked=%d resolved=%d parlays=%d warnings=%d",
		summary.LegsChecked, summary.LegsResolved, summary.ParlaysResolved, len(summary.Warnings))

	return summary, nil
}

// fetchGroups pulls each (sport, date) group's results once, fanning the
// groups out concurrently since they are independent and read-only. A group
// whose fetch fails is absent from the returned map and simply retried on the
// next run.
func fetchGroups(db *gorm.DB, feed ScoreFeed, groups map[resultGroup][]models.BetLeg, summary *RunSummary) map[resultGroup][]models.GameResult {
	fetched := make(map[resultGroup][]models.GameResult, len(groups))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for key, groupLegs := range groups {
		wg.Add(1)
		go func(key resultGroup, date time.Time) {
			defer wg.Done()
			results, err := feed.GetResults(key.Sport, date)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.warn(db, fmt.Errorf("fetching %s results for %s: %v", key.Sport, key.Date, err))
				return
			}
			fetched[key] = results
		}(key, groupLegs[0].GameDate)
	}
	wg.Wait()

	return fetched
}

// settleParlay re-aggregates one parlay over its full current leg set and
// persists the outcome if it moved to a terminal state. The conditional
// update makes the first writer the only one that credits the user and sends
// the notification.
func settleParlay(s *discordgo.Session, db *gorm.DB, parlayID uint, summary *RunSummary) error {
	var parlay models.Parlay
	result := db.Preload("Legs").First(&parlay, parlayID)
	if result.Error != nil {
		return result.Error
	}

	if parlay.Terminal() {
		return nil
	}

	if len(parlay.Legs) == 0 {
		summary.warn(db, fmt.Errorf("parlay %d has no legs and can never resolve", parlay.ID))
		return nil
	}

	outcome := AggregateParlay(parlay, parlay.Legs)
	if outcome.Status == models.ParlayStatusPending {
		return nil
	}

	update := db.Model(&models.Parlay{}).
		Where("id = ? AND status = ?", parlay.ID, models.ParlayStatusPending).
		Updates(map[string]interface{}{
			"status":      outcome.Status,
			"profit_loss": outcome.ProfitLoss,
		})
	if update.Error != nil {
		return update.Error
	}
	if update.RowsAffected == 0 {
		// Another run got there first; it owns the payout and notification.
		return nil
	}
	summary.ParlaysResolved++

	won := outcome.Status == models.ParlayStatusWin
	creditUser(db, parlay, outcome, won)
	SendParlayResolutionNotification(s, db, parlay, won, outcome.Payout)

	return nil
}

func creditUser(db *gorm.DB, parlay models.Parlay, outcome ParlayOutcome, won bool) {
	var user models.User
	db.First(&user, parlay.UserID)
	if user.ID == 0 {
		return
	}

	if won {
		user.Points += outcome.Payout
		user.TotalBetsWon++
		user.TotalPointsWon += outcome.Payout
	} else {
		user.TotalBetsLost++
		user.TotalPointsLost += float64(parlay.Amount)
	}
	db.Save(&user)
}
