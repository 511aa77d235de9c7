package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstdesk/internal/domain"
	"gstdesk/internal/port"
)

// DispatchService emails issued documents to the counterparty.
type DispatchService interface {
	Send(ctx context.Context, tenantID, docID uuid.UUID) error
}

type dispatchService struct {
	docRepo    port.DocumentRepository
	tenantRepo port.TenantRepository
	sender     port.EmailSender
}

// NewDispatchService creates a new DispatchService implementation.
func NewDispatchService(
	docRepo port.DocumentRepository,
	tenantRepo port.TenantRepository,
	sender port.EmailSender,
) DispatchService {
	return &dispatchService{
		docRepo:    docRepo,
		tenantRepo: tenantRepo,
		sender:     sender,
	}
}

// Send dispatches an issued document to the counterparty email on the
// header. Drafts cannot be dispatched; issue first.
func (s *dispatchService) Send(ctx context.Context, tenantID, docID uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return err
	}
	if doc.Status != domain.DocumentStatusIssued {
		return domain.ErrDocumentNotIssued
	}
	if strings.TrimSpace(doc.CounterpartyEmail) == "" {
		return domain.ErrCounterpartyEmailEmpty
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}

	email := port.DocumentEmail{
		ToAddress:  doc.CounterpartyEmail,
		ToName:     doc.CounterpartyName,
		Kind:       kindLabel(doc.Kind),
		Number:     doc.Number,
		Total:      doc.Total.StringFixed(2),
		TenantName: tenant.Name,
	}
	if err := s.sender.SendDocument(ctx, email); err != nil {
		return fmt.Errorf("dispatchService.Send: %w", err)
	}
	return nil
}

func kindLabel(kind domain.DocumentKind) string {
	switch kind {
	case domain.KindInvoice:
		return "Tax Invoice"
	case domain.KindQuotation:
		return "Quotation"
	case domain.KindSalesOrder:
		return "Sales Order"
	case domain.KindPurchaseBill:
		return "Purchase Bill"
	case domain.KindGoodsReceipt:
		return "Goods Receipt Note"
	case domain.KindCreditNote:
		return "Credit Note"
	default:
		return string(kind)
	}
}
