package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/magpiebot/magpie/pkg/messages"
)

const (
	// zeroWidthSpace is the character spacer messages are built from.
	zeroWidthSpace = "​"

	// spacerShort and spacerLong are the accepted spacer length values.
	spacerShort = "short"
	spacerLong  = "long"

	// longSpacerLines is the number of blank lines in a long spacer.
	longSpacerLines = 30

	// dividerColor is the embed color shared by the fixed embeds.
	dividerColor = 0x36393f

	// dividerImageURL is the image posted by the div command.
	dividerImageURL = "https://cdn.discordapp.com/attachments/1427657618008047621/1428616052152991744/divider.png"
)

// namedColors maps color names accepted by createembed to their values.
var namedColors = map[string]int{
	"red":    0xed4245,
	"green":  0x57f287,
	"blue":   0x3498db,
	"yellow": 0xfee75c,
	"purple": 0x9b59b6,
	"orange": 0xe67e22,
	"white":  0xffffff,
	"black":  0x000000,
	"grey":   0x95a5a6,
}

// parseColor resolves a hex code or color name. Unrecognized values
// report false and the embed keeps the platform default.
func parseColor(value string) (int, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if c, ok := namedColors[v]; ok {
		return c, true
	}

	v = strings.TrimPrefix(strings.TrimPrefix(v, "#"), "0x")
	if len(v) != 6 {
		return 0, false
	}
	c, err := strconv.ParseInt(v, 16, 32)
	if err != nil {
		return 0, false
	}
	return int(c), true
}

// buildEmbed assembles an embed from the supplied option subset. Every
// field is independently optional; an empty set yields an empty embed.
func buildEmbed(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) *discordgo.MessageEmbed {
	embed := new(discordgo.MessageEmbed)

	if title := stringOption(opts, "title"); title != "" {
		embed.Title = title
	}
	if description := stringOption(opts, "description"); description != "" {
		embed.Description = description
	}
	if color := stringOption(opts, "color"); color != "" {
		if c, ok := parseColor(color); ok {
			embed.Color = c
		}
	}
	if footer := stringOption(opts, "footer"); footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text:    footer,
			IconURL: stringOption(opts, "footericon"),
		}
	}
	if boolOption(opts, "timestamp") {
		embed.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if thumbnail := stringOption(opts, "thumbnail"); thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: thumbnail}
	}
	if image := stringOption(opts, "image"); image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: image}
	}
	if author := stringOption(opts, "authorname"); author != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    author,
			IconURL: stringOption(opts, "authoricon"),
		}
	}

	return embed
}

// createEmbedHandler posts an ad-hoc embed assembled from the command's
// options.
func createEmbedHandler(a IApp, i *discordgo.InteractionCreate) error {
	embed := buildEmbed(commandOptions(i))

	if _, err := a.Session().ChannelMessageSendEmbed(i.ChannelID, embed); err != nil {
		return fmt.Errorf("error sending embed: %w", err)
	}

	return respondEphemeral(a, i, "✅ Embed sent!")
}

// spacerContent returns the payload for a spacer length, or "" for
// values outside the command's choices.
func spacerContent(length string) string {
	switch length {
	case spacerShort:
		return zeroWidthSpace
	case spacerLong:
		return strings.Repeat(zeroWidthSpace+"\n", longSpacerLines)
	}
	return ""
}

// spacerHandler posts a zero-width-space spacer in the invoking
// channel.
func spacerHandler(a IApp, i *discordgo.InteractionCreate) error {
	length := stringOption(commandOptions(i), "length")

	content := spacerContent(length)
	if content == "" {
		return respondError(a, i)
	}

	if _, err := a.Session().ChannelMessageSend(i.ChannelID, content); err != nil {
		return fmt.Errorf("error sending spacer: %w", err)
	}

	return respondEphemeral(a, i, fmt.Sprintf("✅ %s spacer added!", length))
}

// sayHandler relays the supplied text verbatim to the channel.
func sayHandler(a IApp, i *discordgo.InteractionCreate) error {
	if !hasRole(i.Member, a.Config().StaffRoleID) {
		return respondEphemeral(a, i, messages.ErrNoPermission)
	}

	text := stringOption(commandOptions(i), "message")
	if strings.TrimSpace(text) == "" {
		return respondEphemeral(a, i, messages.ErrEmptyMessage)
	}

	if _, err := a.Session().ChannelMessageSend(i.ChannelID, text); err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}

	return respondEphemeral(a, i, "✅ Message sent!")
}

// divHandler posts the fixed divider embed.
func divHandler(a IApp, i *discordgo.InteractionCreate) error {
	if !hasRole(i.Member, a.Config().StaffRoleID) {
		return respondEphemeral(a, i, messages.ErrNoPermission)
	}

	embed := &discordgo.MessageEmbed{
		Color: dividerColor,
		Image: &discordgo.MessageEmbedImage{URL: dividerImageURL},
	}

	if _, err := a.Session().ChannelMessageSendEmbed(i.ChannelID, embed); err != nil {
		return fmt.Errorf("error sending embed: %w", err)
	}

	return respondEphemeral(a, i, "✅ Embed sent!")
}
