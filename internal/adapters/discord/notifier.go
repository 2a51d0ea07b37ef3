package discord

import (
	"context"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"sitedesk/internal/ports/output"
	pkgdiscord "sitedesk/pkg/discord"
)

var (
	_ output.Notifier = (*interactionNotifier)(nil)
	_ output.Notifier = (*ChannelNotifier)(nil)
	_ output.Notifier = notifiers(nil)
)

// interactionNotifier answers the interaction with the first notification
// and sends later ones as follow-ups.
type interactionNotifier struct {
	s   *discordgo.Session
	i   *discordgo.Interaction
	rtl bool

	mu   sync.Mutex
	sent bool
}

func newInteractionNotifier(s *discordgo.Session, i *discordgo.Interaction, rtl bool) *interactionNotifier {
	return &interactionNotifier{s: s, i: i, rtl: rtl}
}

func (n *interactionNotifier) Notify(_ context.Context, note output.Notification) {
	embed := pkgdiscord.BuildNotificationEmbed(note.Title, note.Description, string(note.Level), n.rtl)

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.sent {
		n.sent = true
		respondEphemeral(n.s, n.i, embed)
		return
	}
	if _, err := n.s.FollowupMessageCreate(n.i, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.Printf("⚠️ Erreur lors de l'envoi du suivi: %v", err)
	}
}

func (n *interactionNotifier) responded() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent
}

// ChannelNotifier mirrors notifications into an audit channel.
type ChannelNotifier struct {
	s         *discordgo.Session
	channelID string
}

func NewChannelNotifier(s *discordgo.Session, channelID string) *ChannelNotifier {
	return &ChannelNotifier{s: s, channelID: channelID}
}

func (n *ChannelNotifier) Notify(_ context.Context, note output.Notification) {
	if n == nil || n.channelID == "" {
		return
	}
	embed := pkgdiscord.BuildNotificationEmbed(note.Title, note.Description, string(note.Level), false)
	if _, err := n.s.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		log.Printf("⚠️ Erreur lors de l'envoi dans le salon d'audit %s: %v", n.channelID, err)
	}
}

// notifiers fans a notification out to every non-nil sink.
type notifiers []output.Notifier

func (ns notifiers) Notify(ctx context.Context, note output.Notification) {
	for _, n := range ns {
		if n != nil {
			n.Notify(ctx, note)
		}
	}
}
