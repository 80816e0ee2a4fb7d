// Package mail extracts sender information from RFC 5322 messages
// piped on standard input, for the add-email mode.
package mail

import (
	"fmt"
	"io"
	"net/mail"
	"strings"
)

// Sender is the parsed From header of a message.
type Sender struct {
	// Name is the display name, empty when the header carries only
	// an address.
	Name string
	// Address is the email address.
	Address string
}

// ParseSender reads a message from r and returns the sender from its
// From header. Only the header section is read.
func ParseSender(r io.Reader) (Sender, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return Sender{}, fmt.Errorf("parse message: %w", err)
	}

	from := msg.Header.Get("From")
	if from == "" {
		return Sender{}, fmt.Errorf("message has no From header")
	}

	addr, err := mail.ParseAddress(from)
	if err != nil {
		return Sender{}, fmt.Errorf("parse From header: %w", err)
	}

	name := strings.TrimSpace(addr.Name)
	if name == "" {
		// Fall back to the local part so the entry still has a name.
		if at := strings.IndexByte(addr.Address, '@'); at > 0 {
			name = addr.Address[:at]
		} else {
			name = addr.Address
		}
	}

	return Sender{Name: name, Address: addr.Address}, nil
}
