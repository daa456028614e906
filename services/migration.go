package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"parlayPilot/models"
	"parlayPilot/services/matchService"
)

// aliasSeed holds the known external spellings per stable team key. The
// matcher compares by key whenever both sides of a comparison are seeded, so
// every spelling added here removes a fuzzy-match path. Spellings observed in
// the fuzzy-fallback log belong in this table.
var aliasSeed = map[string]map[string][]string{
	"nba": {
		"LAL": {"Lakers", "Los Angeles Lakers", "LA Lakers"},
		"LAC": {"Clippers", "Los Angeles Clippers", "LA Clippers"},
		"GSW": {"Warriors", "Golden State Warriors", "GS Warriors"},
		"BKN": {"Nets", "Brooklyn Nets"},
		"NYK": {"Knicks", "New York Knicks", "NY Knicks"},
		"PHX": {"Suns", "Phoenix Suns"},
		"SAS": {"Spurs", "San Antonio Spurs", "SA Spurs"},
	},
	"nfl": {
		"KC":  {"Chiefs", "Kansas City Chiefs", "KC Chiefs"},
		"DEN": {"Broncos", "Denver Broncos"},
		"NYG": {"Giants", "New York Giants", "NY Giants"},
		"NYJ": {"Jets", "New York Jets", "NY Jets"},
		"LAR": {"Rams", "Los Angeles Rams", "LA Rams"},
		"LV":  {"Raiders", "Las Vegas Raiders", "Oakland Raiders"},
	},
	"cfb": {
		"OSU":  {"Ohio State", "Ohio State Buckeyes"},
		"OKST": {"Oklahoma State", "Oklahoma State Cowboys"},
		"MSU":  {"Michigan State", "Michigan State Spartans"},
		"MICH": {"Michigan", "Michigan Wolverines"},
		"USC":  {"USC", "USC Trojans", "Southern California"},
	},
}

// RunTeamAliasSeed loads the built-in alias spellings into the team_aliases
// table once, guarded by a migrations row so restarts don't re-insert.
func RunTeamAliasSeed(db *gorm.DB) error {
	var existingMigration models.Migration
	result := db.Where("name = ?", "team_alias_seed").First(&existingMigration)
	if result.Error == nil && existingMigration.ID != 0 {
		return nil
	}

	log.Println("Seeding team aliases...")

	inserted := 0
	for sport, teams := range aliasSeed {
		for teamKey, spellings := range teams {
			for _, spelling := range spellings {
				alias := models.TeamAlias{
					Sport:   sport,
					Alias:   matchService.Normalize(spelling),
					TeamKey: teamKey,
				}
				if err := db.Create(&alias).Error; err != nil {
					return fmt.Errorf("seeding alias %s/%s: %v", sport, spelling, err)
				}
				inserted++
			}
		}
	}

	migration := models.Migration{
		Name:       "team_alias_seed",
		ExecutedAt: time.Now(),
	}
	if err := db.Create(&migration).Error; err != nil {
		return fmt.Errorf("recording alias seed migration: %v", err)
	}

	log.Printf("Seeded %d team aliases", inserted)
	return nil
}
