package models

import "gorm.io/gorm"

// TeamAlias maps one known external spelling of a team to a stable internal
// key. The matcher prefers key equality over fuzzy text comparison whenever
// both spellings are mapped for a sport.
type TeamAlias struct {
	gorm.Model
	ID      uint   `gorm:"primaryKey"`
	Sport   string `gorm:"uniqueIndex:alias_sport_idx; size:16"`
	Alias   string `gorm:"uniqueIndex:alias_sport_idx; size:128"` // stored normalized
	TeamKey string `gorm:"size:64"`
}
