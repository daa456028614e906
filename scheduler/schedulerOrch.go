package scheduler

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"parlayPilot/models"
	"parlayPilot/scheduler/scheduler_jobs"
	"parlayPilot/services/betService"
)

// SetupCron wires the periodic resolution run. The engine itself exposes only
// betService.RunResolution; everything here is trigger plumbing.
func SetupCron(s *discordgo.Session, db *gorm.DB, feed betService.ScoreFeed) {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 0 */1 * * *", func() {
		// Every hour
		err := scheduler_jobs.ResolvePendingParlays(s, db, feed)
		if err != nil {
			fmt.Println(err)
		}
	})

	if err != nil {
		errLog := models.ErrorLog{
			Source:  "CRON ERR",
			Message: fmt.Sprintf("%v", err),
		}
		db.Create(&errLog)
	}

	cronService.Start()
}
