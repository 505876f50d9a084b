package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWelcomeMessage(t *testing.T) {
	msg := welcomeMessage("12345")

	require.Contains(t, msg.Content, "<@12345>")
	require.Len(t, msg.Embeds, 2)

	// First embed carries the rich text, second is image-only.
	require.NotEmpty(t, msg.Embeds[0].Description)
	require.NotNil(t, msg.Embeds[0].Image)
	require.Empty(t, msg.Embeds[1].Description)
	require.NotNil(t, msg.Embeds[1].Image)
}
