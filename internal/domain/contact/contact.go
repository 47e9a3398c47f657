package contact

import (
	"errors"
	"strings"
)

type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Notification is the transient acknowledgement shown after a submit.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var ErrMissingField = errors.New("name, email and message are required")

func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return ErrMissingField
	}
	return nil
}
