package main

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
)

const (
	// TicketButtonCmdName is the command that posts a ticket panel.
	TicketButtonCmdName = "ticketbutton"

	// CreateEmbedCmdName is the command that posts an ad-hoc embed.
	CreateEmbedCmdName = "createembed"

	// SpacerCmdName is the command that posts a spacer message.
	SpacerCmdName = "spacer"

	// SayCmdName is the command that relays literal text as the bot.
	SayCmdName = "say"

	// DivCmdName is the command that posts the fixed divider embed.
	DivCmdName = "div"

	// WaitlistCmdName is the command that posts an order to the waitlist.
	WaitlistCmdName = "waitlist"

	// PricesCmdName is the command that posts the pricing menu.
	PricesCmdName = "prices"
)

// adminOnly marks a command as administrator-only by default. The gate
// is advisory for UI visibility; handlers performing privileged
// mutations additionally check the staff role themselves.
var adminOnly = int64(discordgo.PermissionAdministrator)

// panelSlotOptions builds the four options for one ticket panel slot.
// Only the first slot's color is required.
func panelSlotOptions(n int) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Name:        fmt.Sprintf("color%d", n),
			Type:        discordgo.ApplicationCommandOptionString,
			Description: fmt.Sprintf("Color for Button %d", n),
			Required:    n == 1,
		},
		{
			Name:        fmt.Sprintf("label%d", n),
			Type:        discordgo.ApplicationCommandOptionString,
			Description: fmt.Sprintf("Label for Button %d", n),
		},
		{
			Name:        fmt.Sprintf("emoji%d", n),
			Type:        discordgo.ApplicationCommandOptionString,
			Description: fmt.Sprintf("Emoji for Button %d", n),
		},
		{
			Name:        fmt.Sprintf("category%d", n),
			Type:        discordgo.ApplicationCommandOptionChannel,
			Description: fmt.Sprintf("Category for Button %d", n),
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildCategory,
			},
		},
	}
}

var (
	// ticketButtonCmd posts a ticket panel with up to three buttons.
	ticketButtonCmd = &discordgo.ApplicationCommand{
		Name:                     TicketButtonCmdName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              "Create a ticket panel with up to 3 buttons",
		DefaultMemberPermissions: &adminOnly,
		Options: append(append(panelSlotOptions(1), panelSlotOptions(2)...),
			panelSlotOptions(3)...),
	}

	// createEmbedCmd assembles an embed from any subset of its options.
	createEmbedCmd = &discordgo.ApplicationCommand{
		Name:        CreateEmbedCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "Create a fully customized embed",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "color",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Hex code or color name",
			},
			{
				Name:        "title",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Embed title",
			},
			{
				Name:        "description",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Embed description",
			},
			{
				Name:        "footer",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Footer text",
			},
			{
				Name:        "footericon",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Footer icon URL",
			},
			{
				Name:        "timestamp",
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Description: "Add timestamp",
			},
			{
				Name:        "thumbnail",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Thumbnail URL",
			},
			{
				Name:        "image",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Image URL",
			},
			{
				Name:        "authorname",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Author name",
			},
			{
				Name:        "authoricon",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Author icon URL",
			},
		},
	}

	// spacerCmd posts a zero-width-space spacer message.
	spacerCmd = &discordgo.ApplicationCommand{
		Name:        SpacerCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "Add a spacer message to the channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "length",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Choose spacer length",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Short", Value: spacerShort},
					{Name: "Long", Value: spacerLong},
				},
			},
		},
	}

	// sayCmd relays the supplied text verbatim.
	sayCmd = &discordgo.ApplicationCommand{
		Name:                     SayCmdName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              "Send a message as the bot (admin only)",
		DefaultMemberPermissions: &adminOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "message",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Message to send",
				Required:    true,
			},
		},
	}

	// divCmd posts the fixed divider embed.
	divCmd = &discordgo.ApplicationCommand{
		Name:                     DivCmdName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              "Send a preset embed with an image (admin only)",
		DefaultMemberPermissions: &adminOnly,
	}

	// waitlistCmd posts an order to the waitlist channel.
	waitlistCmd = &discordgo.ApplicationCommand{
		Name:        WaitlistCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "Add a user to the waitlist with an order",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "user",
				Type:        discordgo.ApplicationCommandOptionUser,
				Description: "Customer being added",
				Required:    true,
			},
			{
				Name:        "item",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Item ordered",
				Required:    true,
			},
			{
				Name:        "mop",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Method of payment",
				Required:    true,
			},
			{
				Name:        "amount",
				Type:        discordgo.ApplicationCommandOptionString,
				Description: "Quantity ordered",
				Required:    true,
			},
		},
	}

	// pricesCmd posts the pricing dropdown.
	pricesCmd = &discordgo.ApplicationCommand{
		Name:                     PricesCmdName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              "Show pricing options dropdown",
		DefaultMemberPermissions: &adminOnly,
	}
)

// botCommands is the full command registry, registered once at startup.
func botCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		ticketButtonCmd,
		createEmbedCmd,
		spacerCmd,
		sayCmd,
		divCmd,
		waitlistCmd,
		pricesCmd,
	}
}
