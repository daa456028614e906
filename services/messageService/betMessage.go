package messageService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"parlayPilot/models"
	"parlayPilot/services/common"
)

// BuildParlayResolutionEmbed builds the channel message for a settled parlay,
// listing every leg with its outcome.
func BuildParlayResolutionEmbed(parlay models.Parlay, user models.User, won bool, payout float64) *discordgo.MessageEmbed {
	var title string
	var color int
	var description strings.Builder

	if won {
		title = "🎉 Parlay Hit!"
		color = 0x57F287 // Discord green
		description.WriteString(fmt.Sprintf("<@%s> Your parlay has been **won**!\n\n", user.DiscordID))
		description.WriteString(fmt.Sprintf("**Amount Wagered:** %d points\n", parlay.Amount))
		description.WriteString(fmt.Sprintf("**Payout:** %.1f points\n", payout))
	} else {
		title = "💔 Parlay Lost"
		color = 0xED4245 // Discord red
		description.WriteString(fmt.Sprintf("<@%s> Your parlay has been **lost**.\n\n", user.DiscordID))
		description.WriteString(fmt.Sprintf("**Amount Wagered:** %d points\n", parlay.Amount))
	}

	description.WriteString("\n**Parlay Details:**\n")
	for idx, leg := range parlay.Legs {
		description.WriteString(fmt.Sprintf("%d. %s\n", idx+1, formatLeg(leg)))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description.String(),
		Color:       color,
	}
}

func formatLeg(leg models.BetLeg) string {
	pick := leg.Pick
	switch leg.BetType {
	case models.BetTypeSpread:
		if leg.Line != nil {
			pick = fmt.Sprintf("%s %s", leg.Pick, common.FormatOdds(*leg.Line))
		}
	case models.BetTypeTotal:
		if leg.Line != nil {
			pick = fmt.Sprintf("%s %.1f", leg.Pick, *leg.Line)
		}
	}

	status := "⏳ Pending"
	switch leg.Outcome {
	case models.OutcomeWon:
		status = "✅ Won"
	case models.OutcomeLost:
		status = "❌ Lost"
	case models.OutcomePush:
		status = "↔️ Push"
	}

	return fmt.Sprintf("%s @ %s: **%s** (%s) - %s",
		leg.AwayTeam, leg.HomeTeam, pick, common.FormatOdds(float64(leg.Price)), status)
}
