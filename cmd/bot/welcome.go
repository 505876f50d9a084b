package main

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/magpiebot/magpie/pkg/logging"
)

const (
	// welcomeImageURL is the banner on the first welcome embed.
	welcomeImageURL = "https://cdn.discordapp.com/attachments/1427657618008047621/1428616052152991744/banner.png"

	// welcomeArtURL is the image-only second welcome embed.
	welcomeArtURL = "https://cdn.discordapp.com/attachments/1427657618008047621/1428556895890968616/art.jpg"
)

// welcomeMessage builds the greeting posted when a member joins.
func welcomeMessage(userID string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("welcome <@%s>!", userID),
		Embeds: []*discordgo.MessageEmbed{
			{
				Color: dividerColor,
				Description: "please read the tos and reviews before ordering.\n" +
					"questions go in the ask channel.\n" +
					"see examples, prices and order info in their channels.",
				Image: &discordgo.MessageEmbedImage{URL: welcomeImageURL},
			},
			{
				Color: dividerColor,
				Image: &discordgo.MessageEmbedImage{URL: welcomeArtURL},
			},
		},
	}
}

// welcomeHandler greets new members in the configured welcome channel.
// A missing or non-text channel disables the greeting silently.
func welcomeHandler(a IApp) func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	return func(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
		channelID := a.Config().WelcomeChannelID
		if channelID == "" {
			return
		}

		channel, err := a.Session().Channel(channelID)
		if err != nil || channel.Type != discordgo.ChannelTypeGuildText {
			return
		}

		if _, err := a.Session().ChannelMessageSendComplex(channel.ID, welcomeMessage(m.User.ID)); err != nil {
			a.Log().Error("Error sending welcome message", slog.String(logging.KeyError, err.Error()))
		}
	}
}
