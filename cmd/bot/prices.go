package main

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/magpiebot/magpie/pkg/messages"
)

// PriceMenuID is the custom ID of the pricing select menu.
const PriceMenuID = "price_menu"

const (
	priceCashapp = "cashapp"
	priceNitro   = "nitro"
	priceRobux   = "robux"
	priceAddons  = "addons"
)

// priceBlocks is the closed table of pricing text per menu value.
var priceBlocks = map[string]string{
	priceCashapp: `ticket command: $3
complex ticket: $5
waitlist: $1
complex waitlist: $5
embeds: $3
greet: $1
complex greet: $3
simple status: $1
complex status: $3

any module not listed: negotiable

interactive carrds
maximal: $5
minimal: $3
$0.50 per page

non-interactive carrds
minimal: $1
maximal: $3+

must have inspo or tut`,

	priceNitro: `ticket command: nbsc
complex ticket: nbst (negotiable if bundled)
waitlist: nbsc
complex waitlist: nbst (negotiable if bundled)
embeds: nbsc
greet: nbsc
complex greet: nbsc
simple status: nbsc
complex status: deco (negotiable if bundled)

any module not listed: negotiable

interactive carrds
maximal: nbst
minimal: nbsc
max: 3 pgs

non-interactive carrds
minimal: nbsc
maximal: nbsc+

must have inspo or tut`,

	priceRobux: `ticket command: 240 rbx
complex ticket: 500 rbx
waitlist: 100 rbx
complex waitlist: 500 rbx
embeds: 240 rbx
greet: 100 rbx
complex greet: 240 rbx
simple status: 100 rbx
complex status: 240 rbx

any module not listed: negotiable

interactive carrds
maximal: 4-500 rbx
minimal: 240 rbx
80 rbx per page

non-interactive carrds
minimal: 100 rbx
maximal: 240 rbx

must have inspo or tut`,

	priceAddons: `rush fee: $5, 500 rbx, or dcr
priority: $3, 240 rbx, or nbsc
extra revisions: $1 after your 3rd

I will make you aware of the add-ons`,
}

// priceMenu builds the fixed four-option select menu.
func priceMenu() discordgo.SelectMenu {
	return discordgo.SelectMenu{
		CustomID:    PriceMenuID,
		Placeholder: "payments",
		Options: []discordgo.SelectMenuOption{
			{Label: "one - cashapp", Value: priceCashapp},
			{Label: "two - nitro", Value: priceNitro},
			{Label: "three - robux", Value: priceRobux},
			{Label: "four - add-ons", Value: priceAddons},
		},
	}
}

// pricesHandler posts the pricing dropdown publicly in the invoking
// channel.
func pricesHandler(a IApp, i *discordgo.InteractionCreate) error {
	if _, err := a.Session().ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					priceMenu(),
				},
			},
		},
	}); err != nil {
		return fmt.Errorf("error sending pricing menu: %w", err)
	}

	return respondEphemeral(a, i, "✅ Dropdown sent!")
}

// priceMenuHandler resolves a pricing selection to its fixed text
// block, visible only to the selecting user. Unknown values get a
// fallback notice rather than an empty reply.
func priceMenuHandler(a IApp, i *discordgo.InteractionCreate, value string) error {
	block, ok := priceBlocks[value]
	if !ok {
		return respondEphemeral(a, i, messages.ErrUnknownPriceOption)
	}

	return respondEphemeralEmbed(a, i, &discordgo.MessageEmbed{
		Color:       dividerColor,
		Description: block,
	})
}
