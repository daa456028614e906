package models

import "time"

const (
	GameStatusScheduled  = "scheduled"
	GameStatusInProgress = "in_progress"
	GameStatusFinal      = "final"
)

// GameResult is one externally-sourced score, as reported by the feed for a
// single event. Results are never persisted or mutated by the engine; each
// run works from a fresh fetch. Scores are only meaningful when Status is
// "final".
type GameResult struct {
	EventID   string
	Sport     string
	GameDate  time.Time
	HomeTeam  string // provider's spelling
	AwayTeam  string
	HomeScore int
	AwayScore int
	Status    string
}

func (r *GameResult) Final() bool {
	return r.Status == GameStatusFinal
}
