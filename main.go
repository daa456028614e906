package main

import (
	"log"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"parlayPilot/models"
	"parlayPilot/scheduler"
	"parlayPilot/services"
	"parlayPilot/services/extService"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	connString := os.Getenv("MYSQL_URL")
	if connString == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	db, err = gorm.Open(mysql.Open(connString+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Guild{},
		&models.Parlay{},
		&models.BetLeg{},
		&models.TeamAlias{},
		&models.ErrorLog{},
		&models.Migration{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err = services.RunTeamAliasSeed(db); err != nil {
		log.Fatalf("Error seeding team aliases: %v", err)
	}
}

func main() {
	// Notifications are optional: without a bot token the engine still
	// resolves bets, it just stays quiet about it.
	var dg *discordgo.Session
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token != "" {
		var err error
		dg, err = discordgo.New("Bot " + token)
		if err != nil {
			log.Fatalf("Error creating Discord session: %v", err)
		}

		dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

		if err = dg.Open(); err != nil {
			log.Fatalf("Error opening Discord session: %v", err)
		}
		defer func(dg *discordgo.Session) {
			if err := dg.Close(); err != nil {
				log.Printf("Error closing Discord session: %v", err)
			}
		}(dg)
	} else {
		log.Println("DISCORD_BOT_TOKEN not set, running without notifications")
	}

	scheduler.SetupCron(dg, db, extService.NewESPNFeed())

	log.Println("Resolution engine is running. Press CTRL+C to exit.")
	select {}
}
