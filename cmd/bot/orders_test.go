package main

import (
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/magpiebot/magpie/pkg/orders"
	"github.com/stretchr/testify/require"
)

func TestOrderComponents(t *testing.T) {
	components := orderComponents()
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	wantIDs := []string{"status_paid", "status_processing", "status_done"}
	for n, comp := range row.Components {
		button, ok := comp.(discordgo.Button)
		require.True(t, ok)
		require.Equal(t, wantIDs[n], button.CustomID)
		require.False(t, button.Disabled)
		require.Equal(t, discordgo.SecondaryButton, button.Style)
	}
}

func TestDisableComponents(t *testing.T) {
	// Inbound message components arrive as pointers, the way the
	// session decodes them.
	inbound := []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{Label: "paid", CustomID: "status_paid"},
				&discordgo.Button{Label: "processing", CustomID: "status_processing"},
				&discordgo.Button{Label: "done", CustomID: "status_done"},
			},
		},
	}

	got := disableComponents(inbound)
	require.Len(t, got, 1)

	row, ok := got[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	for _, comp := range row.Components {
		button, ok := comp.(discordgo.Button)
		require.True(t, ok)
		require.True(t, button.Disabled, "button %s must be disabled", button.CustomID)
	}

	// The inbound components are untouched.
	originalRow := inbound[0].(*discordgo.ActionsRow)
	for _, comp := range originalRow.Components {
		require.False(t, comp.(*discordgo.Button).Disabled)
	}
}

func TestStatusSuffixesMatchButtonIDs(t *testing.T) {
	// Every status button's suffix must resolve to a status, and
	// pending must never be reachable from a button.
	for _, comp := range orderComponents() {
		row := comp.(discordgo.ActionsRow)
		for _, c := range row.Components {
			button := c.(discordgo.Button)
			suffix := button.CustomID[len(StatusButtonPrefix):]
			status, ok := orders.FromSuffix(suffix)
			require.True(t, ok)
			require.NotEqual(t, orders.StatusPending, status)
		}
	}
}
