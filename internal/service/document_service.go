package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstdesk/internal/domain"
	"gstdesk/internal/gst"
	"gstdesk/internal/port"
)

// CreateDocumentInput is the DTO for creating a new draft document.
type CreateDocumentInput struct {
	Kind              domain.DocumentKind
	DocDate           time.Time
	CounterpartyName  string
	CounterpartyGSTIN string
	CounterpartyEmail string
	CounterpartyState string
	Notes             string
}

// LineDraft carries the editable fields of one row plus its catalog
// metadata. The computed columns are always derived, never accepted.
type LineDraft struct {
	ItemID   *uuid.UUID
	Name     string
	HSNCode  string
	Unit     string
	Quantity decimal.Decimal
	Rate     decimal.Decimal
	Discount gst.Discount
	TaxRate  decimal.Decimal
}

func (d LineDraft) engineInput() gst.LineInput {
	return gst.LineInput{
		Quantity: d.Quantity,
		Rate:     d.Rate,
		Discount: d.Discount,
		TaxRate:  d.TaxRate,
	}
}

// DocumentDetail is a document header with its ordered lines.
type DocumentDetail struct {
	Document *domain.Document      `json:"document"`
	Lines    []domain.DocumentLine `json:"lines"`
}

// DocumentService orchestrates document editing. Every mutation runs
// through the calculation engine and persists header and lines
// atomically, so stored totals are always consistent with the rows.
type DocumentService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateDocumentInput) (*DocumentDetail, error)
	Get(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error)
	List(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, offset, limit int) ([]domain.Document, int, error)
	AddLine(ctx context.Context, tenantID, docID uuid.UUID, draft LineDraft) (*DocumentDetail, error)
	AddItem(ctx context.Context, tenantID, docID, itemID uuid.UUID, quantity decimal.Decimal) (*DocumentDetail, error)
	UpdateLine(ctx context.Context, tenantID, docID, lineID uuid.UUID, draft LineDraft) (*DocumentDetail, error)
	RemoveLine(ctx context.Context, tenantID, docID, lineID uuid.UUID) (*DocumentDetail, error)
	SetCounterpartyState(ctx context.Context, tenantID, docID uuid.UUID, state string) (*DocumentDetail, error)
	SetDiscount(ctx context.Context, tenantID, docID uuid.UUID, discount gst.Discount) (*DocumentDetail, error)
	Issue(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error)
	Void(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error)
	Delete(ctx context.Context, tenantID, docID uuid.UUID) error
}

type documentService struct {
	docRepo    port.DocumentRepository
	itemRepo   port.ItemRepository
	tenantRepo port.TenantRepository
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	itemRepo port.ItemRepository,
	tenantRepo port.TenantRepository,
) DocumentService {
	return &documentService{
		docRepo:    docRepo,
		itemRepo:   itemRepo,
		tenantRepo: tenantRepo,
	}
}

func (s *documentService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateDocumentInput) (*DocumentDetail, error) {
	if !input.Kind.Valid() {
		return nil, domain.ErrInvalidDocumentKind
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("documentService.Create: %w", err)
	}

	seq, err := s.docRepo.NextSequence(ctx, tenantID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("documentService.Create: %w", err)
	}

	docDate := input.DocDate
	if docDate.IsZero() {
		docDate = time.Now().UTC()
	}

	doc := &domain.Document{
		TenantID:          tenantID,
		Kind:              input.Kind,
		Number:            fmt.Sprintf("%s-%04d", domain.KindPrefixes[input.Kind], seq),
		Status:            domain.DocumentStatusDraft,
		DocDate:           docDate,
		SellerState:       tenant.State,
		CounterpartyName:  input.CounterpartyName,
		CounterpartyGSTIN: input.CounterpartyGSTIN,
		CounterpartyEmail: input.CounterpartyEmail,
		CounterpartyState: input.CounterpartyState,
		GSTType:           gst.ResolveType(tenant.State, input.CounterpartyState),
		Notes:             input.Notes,
		CreatedBy:         userID,
	}
	doc.ApplyTotals(gst.Aggregate(nil, gst.Discount{}))

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("documentService.Create: %w", err)
	}
	return &DocumentDetail{Document: doc, Lines: []domain.DocumentLine{}}, nil
}

func (s *documentService) Get(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error) {
	return s.load(ctx, tenantID, docID)
}

func (s *documentService) List(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, offset, limit int) ([]domain.Document, int, error) {
	if kind != "" && !kind.Valid() {
		return nil, 0, domain.ErrInvalidDocumentKind
	}
	return s.docRepo.ListByTenant(ctx, tenantID, kind, offset, limit)
}

func (s *documentService) AddLine(ctx context.Context, tenantID, docID uuid.UUID, draft LineDraft) (*DocumentDetail, error) {
	detail, err := s.loadDraft(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}

	state := engineState(detail)
	next := gst.Recalculate(state, gst.LineAdded{Input: draft.engineInput()})

	row := domain.DocumentLine{
		ItemID:  draft.ItemID,
		Name:    draft.Name,
		HSNCode: draft.HSNCode,
		Unit:    draft.Unit,
	}
	detail.Lines = append(detail.Lines, row)

	return s.persist(ctx, detail, next)
}

// AddItem adds a catalog item to the document. If the item is already
// present as a line, its quantity is incremented instead of creating a
// duplicate row.
func (s *documentService) AddItem(ctx context.Context, tenantID, docID, itemID uuid.UUID, quantity decimal.Decimal) (*DocumentDetail, error) {
	detail, err := s.loadDraft(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, domain.ErrItemInactive
	}
	if !quantity.IsPositive() {
		quantity = decimal.NewFromInt(1)
	}

	state := engineState(detail)

	for i := range detail.Lines {
		if detail.Lines[i].ItemID != nil && *detail.Lines[i].ItemID == itemID {
			input := state.Lines[i].Input()
			input.Quantity = input.Quantity.Add(quantity)
			next := gst.Recalculate(state, gst.LineEdited{Index: i, Input: input})
			return s.persist(ctx, detail, next)
		}
	}

	next := gst.Recalculate(state, gst.LineAdded{Input: gst.LineInput{
		Quantity: quantity,
		Rate:     item.Rate,
		TaxRate:  item.TaxRate,
	}})
	detail.Lines = append(detail.Lines, domain.DocumentLine{
		ItemID:  &item.ID,
		Name:    item.Name,
		HSNCode: item.HSNCode,
		Unit:    item.Unit,
	})

	return s.persist(ctx, detail, next)
}

func (s *documentService) UpdateLine(ctx context.Context, tenantID, docID, lineID uuid.UUID, draft LineDraft) (*DocumentDetail, error) {
	detail, err := s.loadDraft(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}

	idx := lineIndex(detail.Lines, lineID)
	if idx < 0 {
		return nil, domain.ErrLineNotFound
	}

	state := engineState(detail)
	next := gst.Recalculate(state, gst.LineEdited{Index: idx, Input: draft.engineInput()})

	detail.Lines[idx].ItemID = draft.ItemID
	detail.Lines[idx].Name = draft.Name
	detail.Lines[idx].HSNCode = draft.HSNCode
	detail.Lines[idx].Unit = draft.Unit

	return s.persist(ctx, detail, next)
}

func (s *documentService) RemoveLine(ctx context.Context, tenantID, docID, lineID uuid.UUID) (*DocumentDetail, error) {
	detail, err := s.loadDraft(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}

	idx := lineIndex(detail.Lines, lineID)
	if idx < 0 {
		return nil, domain.ErrLineNotFound
	}

	state := engineState(detail)
	next := gst.Recalculate(state, gst.LineRemoved{Index: idx})
	detail.Lines = append(detail.Lines[:idx], detail.Lines[idx+1:]...)

	return s.persist(ctx, detail, next)
}

// SetCounterpartyState updates the buyer/supplier state and re-splits
// the tax of every line under the new jurisdiction. Taxable bases are
// held fixed; only the CGST/SGST vs IGST composition moves.
func (s *documentService) SetCounterpartyState(ctx context.Context, tenantID, docID uuid.UUID, state string) (*DocumentDetail, error) {
	detail, err := s.loadDraft(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}
	if detail.Document.SellerState == "" || state == "" {
		return nil, domain.ErrStateRequired
	}

	gstType := gst.ResolveType(detail.Document.SellerState, state)
	detail.Document.CounterpartyState = state

	next := gst.Recalculate(engineState(detail), gst.JurisdictionChanged{Type: gstType})
	return s.persist(ctx, detail, next)
}

func (s *documentService) SetDiscount(ctx context.Context, tenantID, docID uuid.UUID, discount gst.Discount) (*DocumentDetail, error) {
	detail, err := s.loadDraft(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}

	next := gst.Recalculate(engineState(detail), gst.DiscountChanged{Discount: discount})
	return s.persist(ctx, detail, next)
}

func (s *documentService) Issue(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error) {
	detail, err := s.load(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}
	if detail.Document.Status != domain.DocumentStatusDraft {
		return nil, domain.ErrDocumentNotDraft
	}
	if err := s.docRepo.UpdateStatus(ctx, tenantID, docID, domain.DocumentStatusIssued); err != nil {
		return nil, err
	}
	detail.Document.Status = domain.DocumentStatusIssued
	return detail, nil
}

func (s *documentService) Void(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error) {
	detail, err := s.load(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}
	if detail.Document.Status != domain.DocumentStatusIssued {
		return nil, domain.ErrDocumentNotIssued
	}
	if err := s.docRepo.UpdateStatus(ctx, tenantID, docID, domain.DocumentStatusVoid); err != nil {
		return nil, err
	}
	detail.Document.Status = domain.DocumentStatusVoid
	return detail, nil
}

func (s *documentService) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return err
	}
	if doc.Status != domain.DocumentStatusDraft {
		return domain.ErrDocumentNotDraft
	}
	return s.docRepo.Delete(ctx, tenantID, docID)
}

func (s *documentService) load(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error) {
	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}
	lines, err := s.docRepo.ListLines(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}
	return &DocumentDetail{Document: doc, Lines: lines}, nil
}

func (s *documentService) loadDraft(ctx context.Context, tenantID, docID uuid.UUID) (*DocumentDetail, error) {
	detail, err := s.load(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}
	if detail.Document.Status != domain.DocumentStatusDraft {
		return nil, domain.ErrDocumentNotDraft
	}
	return detail, nil
}

// persist writes a reducer result back onto the detail rows and header
// and saves them atomically.
func (s *documentService) persist(ctx context.Context, detail *DocumentDetail, state gst.DocumentState) (*DocumentDetail, error) {
	for i := range detail.Lines {
		detail.Lines[i].ApplyLine(state.Lines[i])
	}
	detail.Document.GSTType = state.GSTType
	detail.Document.DiscountMode = string(state.Discount.Mode)
	detail.Document.DiscountValue = state.Discount.Value
	detail.Document.ApplyTotals(state.Totals)

	if err := s.docRepo.Save(ctx, detail.Document, detail.Lines); err != nil {
		return nil, err
	}
	return detail, nil
}

func engineState(detail *DocumentDetail) gst.DocumentState {
	lines := make([]gst.Line, len(detail.Lines))
	for i := range detail.Lines {
		lines[i] = detail.Lines[i].AsLine()
	}
	return gst.DocumentState{
		GSTType:  detail.Document.GSTType,
		Discount: detail.Document.Discount(),
		Lines:    lines,
	}
}

func lineIndex(lines []domain.DocumentLine, lineID uuid.UUID) int {
	for i := range lines {
		if lines[i].ID == lineID {
			return i
		}
	}
	return -1
}
