package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"sitedesk/internal/domain"
)

// resolveRole picks the highest sitedesk role among the member's guild roles.
// Guild administrators are admins; DMs and unknown members are workers.
func resolveRole(s *discordgo.Session, i *discordgo.InteractionCreate) domain.Role {
	member := i.Member
	if member == nil {
		return domain.RoleWorker
	}
	names := make([]string, 0, len(member.Roles))
	for _, id := range member.Roles {
		r, err := s.State.Role(i.GuildID, id)
		if err != nil {
			continue
		}
		names = append(names, r.Name)
	}
	return roleFromNames(member.Permissions, names)
}

func roleFromNames(permissions int64, names []string) domain.Role {
	if permissions&discordgo.PermissionAdministrator != 0 {
		return domain.RoleAdmin
	}
	best := domain.RoleWorker
	for _, n := range names {
		if r, ok := domain.ParseRole(n); ok && r.Outranks(best) {
			best = r
		}
	}
	return best
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("⚠️ Erreur lors de la réponse à l'interaction: %v", err)
	}
}
