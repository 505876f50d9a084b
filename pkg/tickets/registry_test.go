package tickets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelName(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{username: "faye", want: "ticket-faye"},
		{username: "Faye", want: "ticket-faye"},
		{username: "MixedCase123", want: "ticket-mixedcase123"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			require.Equal(t, tt.want, ChannelName(tt.username))
		})
	}
}

func TestUsername(t *testing.T) {
	got, ok := Username("ticket-faye")
	require.True(t, ok)
	require.Equal(t, "faye", got)

	_, ok = Username("general")
	require.False(t, ok)
}

func TestRegistrySingleFlight(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.Begin("faye"))

	// Second attempt while the first is in flight must be rejected.
	require.False(t, r.Begin("faye"))

	// Case-insensitive key: same user, different handle casing.
	require.False(t, r.Begin("Faye"))

	r.Complete("faye", "chan-1")

	id, ok := r.ChannelID("faye")
	require.True(t, ok)
	require.Equal(t, "chan-1", id)

	// Still rejected once the ticket is open.
	require.False(t, r.Begin("faye"))

	r.Release("faye")
	require.True(t, r.Begin("faye"))
}

func TestRegistryReleaseOnFailure(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.Begin("faye"))
	r.Release("faye")

	// A failed creation must not block future attempts.
	require.True(t, r.Begin("faye"))
}

func TestRegistryConcurrentBegin(t *testing.T) {
	r := NewRegistry()

	const attempts = 64

	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)

	for n := 0; n < attempts; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Begin("faye") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	require.Len(t, wins, 1, "exactly one concurrent attempt may win")
}
