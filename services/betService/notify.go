package betService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"parlayPilot/models"
	"parlayPilot/services/guildService"
	"parlayPilot/services/messageService"
)

// SendParlayResolutionNotification posts to the guild betting channel when a
// parlay reaches a terminal state. Notification failures never affect
// settlement; the engine also runs headless with a nil session.
func SendParlayResolutionNotification(s *discordgo.Session, db *gorm.DB, parlay models.Parlay, won bool, payout float64) {
	if s == nil {
		return
	}

	guild, err := guildService.GetGuildInfo(s, db, parlay.GuildID, "")
	if err != nil || guild.BetChannelID == "" {
		return
	}

	var user models.User
	db.First(&user, parlay.UserID)
	if user.ID == 0 {
		return
	}

	embed := messageService.BuildParlayResolutionEmbed(parlay, user, won, payout)
	_, err = s.ChannelMessageSendComplex(guild.BetChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		fmt.Printf("Error sending parlay resolution notification: %v\n", err)
	}
}
