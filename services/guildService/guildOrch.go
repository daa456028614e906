package guildService

import (
	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"parlayPilot/models"
)

// GetGuildInfo loads (or lazily creates) the stored record for a guild,
// keeping the cached guild name current.
func GetGuildInfo(s *discordgo.Session, db *gorm.DB, guildID string, channelID string) (*models.Guild, error) {
	var guild models.Guild
	guildResult := db.Where("guild_id = ?", guildID).First(&guild)

	if guildResult.RowsAffected == 0 {
		guildInfo, err := s.Guild(guildID)
		if err != nil {
			return nil, err
		}
		newGuild := &models.Guild{GuildID: guildID, BetChannelID: channelID, GuildName: guildInfo.Name}
		newGuildResult := db.Create(newGuild)
		if newGuildResult.Error != nil {
			return nil, newGuildResult.Error
		}
		guild = *newGuild
	} else {
		checkGuild, err := s.Guild(guildID)
		if err == nil && guild.GuildName != checkGuild.Name {
			guild.GuildName = checkGuild.Name
			db.Save(&guild)
		}
	}

	return &guild, nil
}
