package models

import "gorm.io/gorm"

const (
	ParlayStatusPending = "pending"
	ParlayStatusWin     = "win"
	ParlayStatusLoss    = "loss"
)

type Parlay struct {
	gorm.Model
	ID         uint `gorm:"primaryKey"`
	UserID     uint
	User       User   `gorm:"foreignKey:UserID"`
	GuildID    string `gorm:"size:64"`
	Amount     int     // stake in points
	Status     string  `gorm:"size:16;default:pending"` // "pending", "win", "loss"
	ProfitLoss float64 // signed; set when the parlay reaches a terminal status
	Legs       []BetLeg
}

// Terminal reports whether the parlay has reached a final status. Terminal
// parlays are immutable.
func (p *Parlay) Terminal() bool {
	return p.Status == ParlayStatusWin || p.Status == ParlayStatusLoss
}
