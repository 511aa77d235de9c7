package port

import (
	"context"

	"github.com/google/uuid"

	"gstdesk/internal/domain"
)

// DocumentRepository defines the contract for document persistence.
// Save persists the document header (including recomputed totals) and
// the full line set atomically: a document's totals are never stored
// out of step with its lines.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.Document, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, offset, limit int) ([]domain.Document, int, error)
	ListLines(ctx context.Context, tenantID, docID uuid.UUID) ([]domain.DocumentLine, error)
	Save(ctx context.Context, doc *domain.Document, lines []domain.DocumentLine) error
	UpdateStatus(ctx context.Context, tenantID, docID uuid.UUID, status domain.DocumentStatus) error
	Delete(ctx context.Context, tenantID, docID uuid.UUID) error
	NextSequence(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind) (int64, error)
}
