package request

import "fmt"

// Message represents a message response from the monitoring server.
type Message struct {
	Message string `json:"Message"`
}

// NewMessage creates a new Message. Arguments are formatted into the
// message when supplied.
func NewMessage(message string, args ...any) *Message {
	msg := message
	if len(args) > 0 {
		msg = fmt.Sprintf(message, args...)
	}
	return &Message{
		Message: msg,
	}
}
