package main

import (
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/require"
)

func TestPanelButtonStyle(t *testing.T) {
	tests := []struct {
		color string
		want  discordgo.ButtonStyle
	}{
		{color: "primary", want: discordgo.PrimaryButton},
		{color: "secondary", want: discordgo.SecondaryButton},
		{color: "success", want: discordgo.SuccessButton},
		{color: "danger", want: discordgo.DangerButton},
		{color: "Danger", want: discordgo.DangerButton},
		{color: "magenta", want: discordgo.PrimaryButton}, // fallback
		{color: "", want: discordgo.PrimaryButton},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			require.Equal(t, tt.want, panelButtonStyle(tt.color))
		})
	}
}

func TestBuildPanelButtons(t *testing.T) {
	t.Run("SingleColorYieldsOneDefaultButton", func(t *testing.T) {
		buttons := buildPanelButtons([maxPanelSlots]panelSlot{
			{color: "danger"},
		})

		require.Len(t, buttons, 1)

		button, ok := buttons[0].(discordgo.Button)
		require.True(t, ok)
		require.Equal(t, "Ticket 1", button.Label)
		require.Equal(t, discordgo.DangerButton, button.Style)
		require.Equal(t, "ticket_create_1", button.CustomID)
	})

	t.Run("FirstSlotRequiresColor", func(t *testing.T) {
		buttons := buildPanelButtons([maxPanelSlots]panelSlot{
			{label: "No color here"},
			{color: "success"},
		})

		require.Len(t, buttons, 1)

		button, ok := buttons[0].(discordgo.Button)
		require.True(t, ok)
		require.Equal(t, "ticket_create_2", button.CustomID)
		require.Equal(t, "Ticket 2", button.Label)
	})

	t.Run("LaterSlotIncludedByAnyField", func(t *testing.T) {
		buttons := buildPanelButtons([maxPanelSlots]panelSlot{
			{color: "primary"},
			{},
			{emoji: "\U0001F49C"},
		})

		require.Len(t, buttons, 2)

		third, ok := buttons[1].(discordgo.Button)
		require.True(t, ok)
		require.Equal(t, "ticket_create_3", third.CustomID)
		require.Equal(t, "\U0001F49C", third.Emoji.Name)
	})

	t.Run("AllThreeSlots", func(t *testing.T) {
		buttons := buildPanelButtons([maxPanelSlots]panelSlot{
			{color: "primary", label: "General"},
			{color: "secondary", label: "Orders"},
			{color: "danger", label: "Urgent"},
		})

		require.Len(t, buttons, 3)
		for n, want := range []string{"General", "Orders", "Urgent"} {
			button, ok := buttons[n].(discordgo.Button)
			require.True(t, ok)
			require.Equal(t, want, button.Label)
		}
	})

	t.Run("EmptySlotsYieldNoButtons", func(t *testing.T) {
		buttons := buildPanelButtons([maxPanelSlots]panelSlot{})
		require.Empty(t, buttons)
	})
}
