package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/magpiebot/magpie/pkg/logging"
)

// commandProcessor handles one command invocation end to end.
type commandProcessor func(a IApp, i *discordgo.InteractionCreate) error

// buttonProcessor handles a button click. For prefix-matched button
// families the suffix carries the parameter extracted from the custom
// ID; exact-match buttons receive an empty suffix.
type buttonProcessor func(a IApp, i *discordgo.InteractionCreate, suffix string) error

// selectProcessor handles a select-menu choice. The chosen value is
// passed as data.
type selectProcessor func(a IApp, i *discordgo.InteractionCreate, value string) error

// buttonFamily is one prefix-matched family of button identifiers.
type buttonFamily struct {
	prefix    string
	processor buttonProcessor
}

// routes is the closed dispatch table for every inbound interaction.
type routes struct {
	// commands is keyed by command name, exact and case-sensitive.
	commands map[string]commandProcessor

	// buttons is keyed by the full button custom ID.
	buttons map[string]buttonProcessor

	// buttonFamilies is consulted after the exact button map; the first
	// matching prefix wins and the remainder of the custom ID is the
	// suffix.
	buttonFamilies []buttonFamily

	// selects is keyed by the select menu's custom ID. The handler
	// switches on the chosen value itself.
	selects map[string]selectProcessor
}

// botRoutes builds the dispatch table for the bot's interaction
// surface.
func botRoutes() *routes {
	return &routes{
		commands: map[string]commandProcessor{
			TicketButtonCmdName: ticketPanelHandler,
			CreateEmbedCmdName:  createEmbedHandler,
			SpacerCmdName:       spacerHandler,
			SayCmdName:          sayHandler,
			DivCmdName:          divHandler,
			WaitlistCmdName:     waitlistHandler,
			PricesCmdName:       pricesHandler,
		},
		buttons: map[string]buttonProcessor{
			CloseTicketButtonID: closeTicketHandler,
		},
		buttonFamilies: []buttonFamily{
			{prefix: TicketCreateButtonPrefix, processor: createTicketHandler},
			{prefix: StatusButtonPrefix, processor: orderStatusHandler},
		},
		selects: map[string]selectProcessor{
			PriceMenuID: priceMenuHandler,
		},
	}
}

// dispatch resolves one interaction to a processor invocation. It
// reports false when no route matches; unmatched interactions are
// ignored without error.
func (rt *routes) dispatch(a IApp, i *discordgo.InteractionCreate) (kind, name string, matched bool, err error) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		processor, ok := rt.commands[data.Name]
		if !ok {
			return "", "", false, nil
		}
		return "command", data.Name, true, processor(a, i)

	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()

		if processor, ok := rt.buttons[data.CustomID]; ok {
			return "button", data.CustomID, true, processor(a, i, "")
		}

		for _, family := range rt.buttonFamilies {
			if suffix, ok := strings.CutPrefix(data.CustomID, family.prefix); ok {
				return "button", data.CustomID, true, family.processor(a, i, suffix)
			}
		}

		if processor, ok := rt.selects[data.CustomID]; ok {
			if len(data.Values) == 0 {
				return "", "", false, nil
			}
			return "select", data.CustomID, true, processor(a, i, data.Values[0])
		}
	}

	return "", "", false, nil
}

// interactionHandler routes every inbound interaction to exactly one
// processor. Processor errors are logged here and never propagate; the
// user receives no failure acknowledgment unless the processor already
// replied.
func interactionHandler(a IApp, rt *routes) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		start := time.Now()

		kind, name, matched, err := rt.dispatch(a, i)
		if !matched {
			return
		}

		DiscordInteractionDuration.WithLabelValues(kind, name).Observe(time.Since(start).Seconds())

		if err != nil {
			a.Log().Error("Error handling interaction",
				slog.String(logging.KeyHandler, kind+":"+name),
				slog.String(logging.KeyError, err.Error()),
			)
		}
	}
}
