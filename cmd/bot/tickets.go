package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/magpiebot/magpie/pkg/logging"
	"github.com/magpiebot/magpie/pkg/messages"
	"github.com/magpiebot/magpie/pkg/tickets"
)

const (
	// TicketCreateButtonPrefix is the prefix of the parameterized ticket
	// creation button family; the suffix is the panel slot number.
	TicketCreateButtonPrefix = "ticket_create_"

	// CloseTicketButtonID is the ID for the close ticket button.
	CloseTicketButtonID = "ticket_close"

	// maxPanelSlots is the number of buttons a ticket panel can carry.
	maxPanelSlots = 3

	// closeTicketDelay is how long a ticket channel lives after the close
	// button is pressed.
	closeTicketDelay = 3 * time.Second
)

// panelSlot is one button's worth of panel parameters.
type panelSlot struct {
	color    string
	label    string
	emoji    string
	category string
}

// buttonStyles maps a color option value to a button style.
var buttonStyles = map[string]discordgo.ButtonStyle{
	"primary":   discordgo.PrimaryButton,
	"secondary": discordgo.SecondaryButton,
	"success":   discordgo.SuccessButton,
	"danger":    discordgo.DangerButton,
}

// panelButtonStyle resolves a color value, falling back to the default
// style for unrecognized values.
func panelButtonStyle(color string) discordgo.ButtonStyle {
	if style, ok := buttonStyles[strings.ToLower(color)]; ok {
		return style
	}
	return discordgo.PrimaryButton
}

// buildPanelButtons builds the panel's buttons from the per-slot
// parameters. Slot 1 requires a color; later slots are included when
// any of their fields is supplied.
func buildPanelButtons(slots [maxPanelSlots]panelSlot) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, maxPanelSlots)

	for n, slot := range slots {
		if slot.color == "" && n == 0 {
			continue
		}
		if slot.color == "" && slot.label == "" && slot.emoji == "" {
			continue
		}

		label := slot.label
		if label == "" {
			label = fmt.Sprintf("Ticket %d", n+1)
		}

		button := discordgo.Button{
			Label:    label,
			Style:    panelButtonStyle(slot.color),
			CustomID: fmt.Sprintf("%s%d", TicketCreateButtonPrefix, n+1),
		}
		if slot.emoji != "" {
			button.Emoji = discordgo.ComponentEmoji{Name: slot.emoji}
		}

		buttons = append(buttons, button)
	}

	return buttons
}

// ticketPanelHandler posts a ticket panel with up to three creation
// buttons in the invoking channel.
func ticketPanelHandler(a IApp, i *discordgo.InteractionCreate) error {
	opts := commandOptions(i)

	var slots [maxPanelSlots]panelSlot
	for n := range slots {
		slots[n] = panelSlot{
			color: stringOption(opts, fmt.Sprintf("color%d", n+1)),
			label: stringOption(opts, fmt.Sprintf("label%d", n+1)),
			emoji: stringOption(opts, fmt.Sprintf("emoji%d", n+1)),
		}
		if opt, ok := opts[fmt.Sprintf("category%d", n+1)]; ok {
			if c := opt.ChannelValue(a.Session()); c != nil {
				slots[n].category = c.ID
			}
		}
	}

	buttons := buildPanelButtons(slots)

	if err := respondEphemeral(a, i, "✅ Ticket panel created!"); err != nil {
		return fmt.Errorf("error responding to interaction: %w", err)
	}

	_, err := a.Session().ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Content: "\U0001F39F️ **Click a button below to create a ticket:**",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: buttons,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error sending panel message: %w", err)
	}

	return nil
}

// createTicketHandler handles a click on a panel button. The slot
// number arrives as the button family suffix.
func createTicketHandler(a IApp, i *discordgo.InteractionCreate, slot string) error {
	username := i.Member.User.Username
	channelName := tickets.ChannelName(username)

	// Reserve the username so concurrent clicks cannot race into two
	// channels.
	if !a.Tickets().Begin(username) {
		return respondEphemeral(a, i, messages.ErrTicketAlreadyOpen)
	}

	created := false
	defer func() {
		if !created {
			a.Tickets().Release(username)
		}
	}()

	// The registry only covers this process; a channel may exist from a
	// previous run.
	channels, err := a.Session().GuildChannels(i.GuildID)
	if err != nil {
		return fmt.Errorf("error listing guild channels: %w", err)
	}
	for _, c := range channels {
		if c.Name == channelName {
			a.Tickets().Complete(username, c.ID)
			created = true
			return respondEphemeral(a, i, messages.ErrTicketAlreadyOpen)
		}
	}

	ticketChannel, err := a.Session().GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:  channelName,
		Type:  discordgo.ChannelTypeGuildText,
		Topic: fmt.Sprintf("Ticket opened by %s (panel button %s)", username, slot),
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			// Deny @everyone from seeing the ticket.
			{
				ID:   i.GuildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			// The creator of the ticket can see the ticket.
			{
				ID:    i.Member.User.ID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
			},
			// Add the staff role.
			{
				ID:    a.Config().StaffRoleID,
				Type:  discordgo.PermissionOverwriteTypeRole,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
			},
		},
		ParentID: a.Config().TicketCategoryID,
	})
	if err != nil {
		return fmt.Errorf("error creating ticket channel: %w", err)
	}

	a.Tickets().Complete(username, ticketChannel.ID)
	created = true

	go func() {
		if err := sendTicketIntro(a, ticketChannel.ID, i.Member.User.ID); err != nil {
			a.Log().Error("Error setting up ticket channel", slog.String(logging.KeyError, err.Error()))
		}
	}()

	return respondEphemeral(a, i, fmt.Sprintf("✅ Ticket created: <#%s>", ticketChannel.ID))
}

// sendTicketIntro posts the introductory notice with the close button
// into a freshly created ticket channel.
func sendTicketIntro(a IApp, channelID, userID string) error {
	staffRole := a.Config().StaffRoleID

	embed := &discordgo.MessageEmbed{
		Title: "\U0001F39F️ Support Ticket",
		Description: fmt.Sprintf("Hello <@%s>, a staff member will assist you shortly.\n\nStaff <@&%s> has been notified.",
			userID, staffRole),
		Color: 0x0000ff,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Opened by",
				Value:  fmt.Sprintf("<@%s>", userID),
				Inline: true,
			},
			{
				Name:   "Staff Role",
				Value:  fmt.Sprintf("<@&%s>", staffRole),
				Inline: true,
			},
		},
	}

	_, err := a.Session().ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@&%s>", staffRole),
		Embeds:  []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Close Ticket",
						Style:    discordgo.DangerButton,
						CustomID: CloseTicketButtonID,
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}
	return nil
}

// closeTicketHandler deletes the current ticket channel after a fixed
// delay. Only members holding the staff role may close tickets.
func closeTicketHandler(a IApp, i *discordgo.InteractionCreate, _ string) error {
	if !hasRole(i.Member, a.Config().StaffRoleID) {
		return respondEphemeral(a, i, "\U0001F6AB You don't have permission to close this ticket.")
	}

	channel, err := a.Session().Channel(i.ChannelID)
	if err != nil {
		return fmt.Errorf("error getting channel: %w", err)
	}

	if err := respondEphemeral(a, i, fmt.Sprintf("\U0001F5D1️ Closing ticket in %d seconds...", int(closeTicketDelay.Seconds()))); err != nil {
		return fmt.Errorf("error responding to interaction: %w", err)
	}

	// Fire and forget; deletion failure is logged, not surfaced.
	time.AfterFunc(closeTicketDelay, func() {
		if _, err := a.Session().ChannelDelete(channel.ID); err != nil {
			a.Log().Error("Error deleting ticket channel", slog.String(logging.KeyError, err.Error()))
			return
		}
		if username, ok := tickets.Username(channel.Name); ok {
			a.Tickets().Release(username)
		}
	})

	return nil
}
