package main

import (
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	kind   string
	name   string
	suffix string
	value  string
}

func recordingRoutes(calls *[]recordedCall) *routes {
	return &routes{
		commands: map[string]commandProcessor{
			"say": func(_ IApp, _ *discordgo.InteractionCreate) error {
				*calls = append(*calls, recordedCall{kind: "command", name: "say"})
				return nil
			},
		},
		buttons: map[string]buttonProcessor{
			"ticket_close": func(_ IApp, _ *discordgo.InteractionCreate, suffix string) error {
				*calls = append(*calls, recordedCall{kind: "button", name: "ticket_close", suffix: suffix})
				return nil
			},
		},
		buttonFamilies: []buttonFamily{
			{
				prefix: "ticket_create_",
				processor: func(_ IApp, _ *discordgo.InteractionCreate, suffix string) error {
					*calls = append(*calls, recordedCall{kind: "button", name: "ticket_create", suffix: suffix})
					return nil
				},
			},
			{
				prefix: "status_",
				processor: func(_ IApp, _ *discordgo.InteractionCreate, suffix string) error {
					*calls = append(*calls, recordedCall{kind: "button", name: "status", suffix: suffix})
					return nil
				},
			},
		},
		selects: map[string]selectProcessor{
			"price_menu": func(_ IApp, _ *discordgo.InteractionCreate, value string) error {
				*calls = append(*calls, recordedCall{kind: "select", name: "price_menu", value: value})
				return nil
			},
		},
	}
}

func commandInteraction(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}
}

func componentInteraction(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
		},
	}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name        string
		interaction *discordgo.InteractionCreate
		matched     bool
		want        recordedCall
	}{
		{
			name:        "CommandExactMatch",
			interaction: commandInteraction("say"),
			matched:     true,
			want:        recordedCall{kind: "command", name: "say"},
		},
		{
			name:        "CommandUnknownIgnored",
			interaction: commandInteraction("Say"),
			matched:     false,
		},
		{
			name:        "ButtonExactMatch",
			interaction: componentInteraction("ticket_close"),
			matched:     true,
			want:        recordedCall{kind: "button", name: "ticket_close"},
		},
		{
			name:        "ButtonFamilySuffixExtracted",
			interaction: componentInteraction("ticket_create_2"),
			matched:     true,
			want:        recordedCall{kind: "button", name: "ticket_create", suffix: "2"},
		},
		{
			name:        "StatusFamilySuffixExtracted",
			interaction: componentInteraction("status_done"),
			matched:     true,
			want:        recordedCall{kind: "button", name: "status", suffix: "done"},
		},
		{
			name:        "SelectValuePassed",
			interaction: componentInteraction("price_menu", "robux"),
			matched:     true,
			want:        recordedCall{kind: "select", name: "price_menu", value: "robux"},
		},
		{
			name:        "SelectWithoutValuesIgnored",
			interaction: componentInteraction("price_menu"),
			matched:     false,
		},
		{
			name:        "UnknownComponentIgnored",
			interaction: componentInteraction("mystery_button"),
			matched:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			rt := recordingRoutes(&calls)

			_, _, matched, err := rt.dispatch(nil, tt.interaction)
			require.NoError(t, err)
			require.Equal(t, tt.matched, matched)

			if !tt.matched {
				require.Empty(t, calls)
				return
			}
			require.Len(t, calls, 1, "exactly one handler must fire")
			require.Equal(t, tt.want, calls[0])
		})
	}
}

func TestBotRoutesCoverInteractionSurface(t *testing.T) {
	rt := botRoutes()

	for _, cmd := range botCommands() {
		require.Contains(t, rt.commands, cmd.Name, "command %s must have a route", cmd.Name)
	}

	require.Contains(t, rt.buttons, CloseTicketButtonID)
	require.Contains(t, rt.selects, PriceMenuID)

	prefixes := make([]string, 0, len(rt.buttonFamilies))
	for _, f := range rt.buttonFamilies {
		prefixes = append(prefixes, f.prefix)
	}
	require.Contains(t, prefixes, TicketCreateButtonPrefix)
	require.Contains(t, prefixes, StatusButtonPrefix)
}
