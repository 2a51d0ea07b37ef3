package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x57F287
	colorWarning = 0xFEE75C
	colorError   = 0xED4245
	colorInfo    = 0x5865F2

	// rlm (U+200F) makes Discord lay out a line right-to-left.
	rlm = "\u200f"

	maxDescription = 4096
)

// ColorFor maps a notification level ("success", "warning", "error") to an embed colour.
func ColorFor(level string) int {
	switch level {
	case "success":
		return colorSuccess
	case "warning":
		return colorWarning
	case "error":
		return colorError
	default:
		return colorInfo
	}
}

// BuildNotificationEmbed builds the embed shown for one notification.
func BuildNotificationEmbed(title, description, level string, rtl bool) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       directional(title, rtl),
		Description: directional(description, rtl),
		Color:       ColorFor(level),
	}
}

// BuildListEmbed renders one line per record. Lines that do not fit in the
// embed description are dropped and the footer keeps the full count.
func BuildListEmbed(title string, lines []string, emptyText, footer string, rtl bool) *discordgo.MessageEmbed {
	var b strings.Builder
	if len(lines) == 0 {
		b.WriteString(directional(emptyText, rtl))
	}
	for _, l := range lines {
		l = directional(l, rtl)
		if b.Len()+len(l)+1 > maxDescription {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(l)
	}
	return &discordgo.MessageEmbed{
		Title:       directional(title, rtl),
		Description: b.String(),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: directional(footer, rtl)},
	}
}

func directional(s string, rtl bool) string {
	if !rtl || s == "" {
		return s
	}
	return rlm + s
}
