// Package orders encodes the waitlist order convention: an order lives
// entirely inside one message whose text carries a literal
// "status: <word>" field. External tools reading order state parse the
// same convention.
package orders

import (
	"fmt"
	"regexp"
	"strings"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
)

// statusPattern matches the status field inside an order message. Only
// the matched fragment is ever rewritten.
var statusPattern = regexp.MustCompile(`(?i)status:\s*\w+`)

// Terminal reports whether the status ends the order lifecycle. A
// terminal order has every action button disabled.
func (s Status) Terminal() bool {
	return s == StatusDone
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// FromSuffix maps a status button identifier suffix ("paid",
// "processing", "done") to its Status.
func FromSuffix(suffix string) (Status, bool) {
	switch Status(suffix) {
	case StatusPaid, StatusProcessing, StatusDone:
		return Status(suffix), true
	}
	return "", false
}

// Render formats a new order message. The status field is initialised
// to pending.
func Render(username, amount, item, methodOfPayment string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("♡ %s's order\n", username))
	b.WriteString(fmt.Sprintf("  %sx %s\n", amount, item))
	b.WriteString(fmt.Sprintf("  paid w: %s\n", methodOfPayment))
	b.WriteString(fmt.Sprintf("  status: %s\n", StatusPending))
	b.WriteString("thank you for shopping with us!")
	return b.String()
}

// UpdateContent rewrites the status field of an order message in place,
// leaving all other text untouched. It reports whether a status field
// was found.
func UpdateContent(content string, s Status) (string, bool) {
	if !statusPattern.MatchString(content) {
		return content, false
	}
	return statusPattern.ReplaceAllString(content, "status: "+string(s)), true
}

// ContentStatus parses the current status from an order message.
func ContentStatus(content string) (Status, bool) {
	match := statusPattern.FindString(content)
	if match == "" {
		return "", false
	}
	word := strings.TrimSpace(strings.TrimPrefix(strings.ToLower(match), "status:"))
	return Status(word), true
}
