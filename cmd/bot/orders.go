package main

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/magpiebot/magpie/pkg/messages"
	"github.com/magpiebot/magpie/pkg/orders"
)

// StatusButtonPrefix is the prefix of the order status button family;
// the suffix is the target status word.
const StatusButtonPrefix = "status_"

// orderComponents builds the three status-toggle buttons attached to an
// order message.
func orderComponents() []discordgo.MessageComponent {
	row := discordgo.ActionsRow{}
	for _, s := range []orders.Status{orders.StatusPaid, orders.StatusProcessing, orders.StatusDone} {
		row.Components = append(row.Components, discordgo.Button{
			Label:    s.String(),
			Style:    discordgo.SecondaryButton,
			CustomID: StatusButtonPrefix + s.String(),
		})
	}
	return []discordgo.MessageComponent{row}
}

// disableComponents rebuilds message components with every button
// disabled. Used when an order reaches its terminal status.
func disableComponents(components []discordgo.MessageComponent) []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(components))
	for _, comp := range components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			out = append(out, comp)
			continue
		}

		newRow := discordgo.ActionsRow{}
		for _, c := range row.Components {
			button, ok := c.(*discordgo.Button)
			if !ok {
				newRow.Components = append(newRow.Components, c)
				continue
			}
			disabled := *button
			disabled.Disabled = true
			newRow.Components = append(newRow.Components, disabled)
		}
		out = append(out, newRow)
	}
	return out
}

// waitlistHandler posts a new order to the configured waitlist channel.
func waitlistHandler(a IApp, i *discordgo.InteractionCreate) error {
	if !hasRole(i.Member, a.Config().StaffRoleID) {
		return respondEphemeral(a, i, messages.ErrNoPermission)
	}

	wlChannel, err := a.Session().Channel(a.Config().WaitlistChannelID)
	if err != nil || wlChannel.Type != discordgo.ChannelTypeGuildText {
		return respondEphemeral(a, i, messages.ErrWaitlistChannelInvalid)
	}

	opts := commandOptions(i)
	customer := opts["user"].UserValue(a.Session())
	item := stringOption(opts, "item")
	mop := stringOption(opts, "mop")
	amount := stringOption(opts, "amount")

	content := orders.Render(customer.Username, amount, item, mop)

	if _, err := a.Session().ChannelMessageSendComplex(wlChannel.ID, &discordgo.MessageSend{
		Content:    content,
		Components: orderComponents(),
	}); err != nil {
		return fmt.Errorf("error sending order message: %w", err)
	}

	return respondEphemeral(a, i, "✅ Order added to waitlist!")
}

// orderStatusHandler rewrites an order message's status field in place.
// The target status arrives as the button family suffix. Reaching the
// terminal status disables every button on the message.
func orderStatusHandler(a IApp, i *discordgo.InteractionCreate, suffix string) error {
	status, ok := orders.FromSuffix(suffix)
	if !ok {
		// Not one of the three status buttons; ignore.
		return nil
	}

	if !hasRole(i.Member, a.Config().StaffRoleID) {
		return respondEphemeral(a, i, messages.ErrNoPermission)
	}

	updated, ok := orders.UpdateContent(i.Message.Content, status)
	if !ok {
		return respondEphemeral(a, i, "❌ No order status found on this message.")
	}

	components := i.Message.Components
	if status.Terminal() {
		components = disableComponents(components)
	}

	if _, err := a.Session().ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         i.Message.ID,
		Content:    &updated,
		Components: components,
	}); err != nil {
		return fmt.Errorf("error editing order message: %w", err)
	}

	return respondEphemeral(a, i, fmt.Sprintf("✅ Status updated to **%s**.", status))
}
