// Package messages holds the user-facing reply strings shared between
// handlers.
package messages

const (
	// ErrUserErrorProcessing is sent when a handler fails unexpectedly after
	// it has already decided to reply.
	ErrUserErrorProcessing = "Something went wrong processing that, please try again."

	// ErrNoPermission is sent when the invoker lacks the staff role.
	ErrNoPermission = "\U0001F6AB You do not have permission to do that."

	// ErrTicketAlreadyOpen is sent when a user who already has an open
	// ticket tries to open another one.
	ErrTicketAlreadyOpen = "❌ You already have an open ticket!"

	// ErrWaitlistChannelInvalid is sent when the configured waitlist channel
	// is missing or not a text channel.
	ErrWaitlistChannelInvalid = "❌ Waitlist channel not found or invalid."

	// ErrEmptyMessage is sent when the say command is invoked without any
	// text to relay.
	ErrEmptyMessage = "❌ You need to provide a message."

	// ErrUnknownPriceOption is sent when a pricing selection carries a value
	// outside the fixed menu.
	ErrUnknownPriceOption = "❌ Pricing for that option is not available."
)
