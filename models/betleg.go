package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BetTypeMoneyline = "moneyline"
	BetTypeSpread    = "spread"
	BetTypeTotal     = "total"
)

const (
	LegStatusPending  = "pending"
	LegStatusResolved = "resolved"
)

const (
	OutcomePending = "pending"
	OutcomeWon     = "won"
	OutcomeLost    = "lost"
	OutcomePush    = "push"
)

// BetLeg is one wagered proposition inside a parlay. A leg is written once by
// the resolution run (pending -> resolved, setting Outcome and ResolvedAt
// together) and never reverted, so re-running the engine on a resolved leg is
// a no-op even if the score feed later changes its mind about the game.
type BetLeg struct {
	gorm.Model
	ID         uint `gorm:"primaryKey"`
	ParlayID   uint
	Parlay     Parlay `gorm:"foreignKey:ParlayID"`
	Sport      string `gorm:"size:16"` // feed sport key: "cfb", "cbb", "nfl", "nba"
	GameDate   time.Time
	HomeTeam   string
	AwayTeam   string
	BetType    string `gorm:"size:16"` // "moneyline", "spread", "total"
	Pick       string // team name for moneyline/spread, "Over"/"Under" for totals
	Line       *float64 // spread for the picked side, or the total threshold; nil for moneyline
	Price      int    // American odds quoted at lock time
	Status     string `gorm:"size:16;default:pending"` // "pending", "resolved"
	Outcome    string `gorm:"size:16;default:pending"` // "pending", "won", "lost", "push"
	ResolvedAt *time.Time
}
