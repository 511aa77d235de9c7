package port

import "context"

// DocumentEmail carries the fields rendered into a dispatch email.
type DocumentEmail struct {
	ToAddress  string
	ToName     string
	Kind       string
	Number     string
	Total      string
	TenantName string
}

// EmailSender defines the contract for dispatching documents by email.
type EmailSender interface {
	SendDocument(ctx context.Context, email DocumentEmail) error
}
