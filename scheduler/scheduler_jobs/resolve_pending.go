package scheduler_jobs

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"parlayPilot/services/betService"
)

// ResolvePendingParlays is the scheduled entry point for the resolution
// engine. It runs one pass as of now and logs the summary; unresolved work is
// simply picked up again on the next tick.
func ResolvePendingParlays(s *discordgo.Session, db *gorm.DB, feed betService.ScoreFeed) error {
	summary, err := betService.RunResolution(s, db, feed, time.Now())
	if err != nil {
		return err
	}

	for _, warning := range summary.Warnings {
		log.Printf("[resolution] warning: %s", warning)
	}

	return nil
}
