package noop

import (
	"context"
	"log"

	"gstdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs dispatches to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDocument(_ context.Context, email port.DocumentEmail) error {
	log.Printf("[NOOP EMAIL] %s %s (total %s) from %s to %s <%s>",
		email.Kind, email.Number, email.Total, email.TenantName, email.ToName, email.ToAddress)
	return nil
}
