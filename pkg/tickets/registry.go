// Package tickets tracks open ticket channels per username so that the
// check-then-create sequence is atomic within the process. The remote
// channel listing remains the cross-process source of truth; the
// registry closes the race window between the existence check and the
// create call for concurrent clicks handled by this instance.
package tickets

import (
	"strings"
	"sync"
)

// channelPrefix is the naming convention for ticket channels.
const channelPrefix = "ticket-"

// ChannelName derives the ticket channel name for a username. Channel
// names are lowercased so the duplicate check and the created channel
// agree.
func ChannelName(username string) string {
	return channelPrefix + strings.ToLower(username)
}

// Username recovers the owning username from a ticket channel name.
func Username(channelName string) (string, bool) {
	if !strings.HasPrefix(channelName, channelPrefix) {
		return "", false
	}
	return strings.TrimPrefix(channelName, channelPrefix), true
}

// Registry is the in-process single-flight map from username to ticket
// channel. An entry exists while a ticket is being created or is open.
type Registry struct {
	mu sync.Mutex

	// open maps lowercased username to channel ID. The ID is empty
	// while creation is in flight.
	open map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		open: make(map[string]string),
	}
}

// Begin reserves the username for ticket creation. It returns false if
// a ticket is already open or in flight for the username, in which case
// the caller must not create a channel.
func (r *Registry) Begin(username string) bool {
	key := strings.ToLower(username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.open[key]; ok {
		return false
	}
	r.open[key] = ""
	return true
}

// Complete records the created channel against a reservation made with
// Begin.
func (r *Registry) Complete(username, channelID string) {
	key := strings.ToLower(username)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.open[key] = channelID
}

// Release drops the entry for a username, either because creation
// failed or because the ticket channel has been deleted.
func (r *Registry) Release(username string) {
	key := strings.ToLower(username)

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.open, key)
}

// ChannelID returns the open ticket channel for a username, if any.
func (r *Registry) ChannelID(username string) (string, bool) {
	key := strings.ToLower(username)

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.open[key]
	return id, ok
}
