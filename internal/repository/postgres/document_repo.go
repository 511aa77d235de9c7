package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstdesk/internal/domain"
	"gstdesk/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	doc.ID = uuid.New()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO documents (
			id, tenant_id, kind, number, status, doc_date,
			seller_state, counterparty_name, counterparty_gstin, counterparty_email, counterparty_state, gst_type,
			discount_mode, discount_value,
			subtotal, cgst, sgst, igst, total_tax, before_discount, discount_amount, round_off, total,
			notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.TenantID, doc.Kind, doc.Number, doc.Status, doc.DocDate,
		doc.SellerState, doc.CounterpartyName, doc.CounterpartyGSTIN, doc.CounterpartyEmail, doc.CounterpartyState, doc.GSTType,
		doc.DiscountMode, doc.DiscountValue,
		doc.Subtotal, doc.CGST, doc.SGST, doc.IGST, doc.TotalTax,
		doc.BeforeDiscount, doc.DiscountAmount, doc.RoundOff, doc.Total,
		doc.Notes, doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE tenant_id = $1 AND id = $2", tenantID, docID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, offset, limit int) ([]domain.Document, int, error) {
	countQuery := "SELECT COUNT(*) FROM documents WHERE tenant_id = $1"
	listQuery := "SELECT * FROM documents WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3"
	countArgs := []interface{}{tenantID}
	listArgs := []interface{}{tenantID, limit, offset}

	if kind != "" {
		countQuery = "SELECT COUNT(*) FROM documents WHERE tenant_id = $1 AND kind = $2"
		listQuery = "SELECT * FROM documents WHERE tenant_id = $1 AND kind = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4"
		countArgs = append(countArgs, kind)
		listArgs = []interface{}{tenantID, kind, limit, offset}
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByTenant count: %w", err)
	}

	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByTenant: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) ListLines(ctx context.Context, tenantID, docID uuid.UUID) ([]domain.DocumentLine, error) {
	var lines []domain.DocumentLine
	err := r.db.SelectContext(ctx, &lines,
		"SELECT * FROM document_lines WHERE tenant_id = $1 AND document_id = $2 ORDER BY position",
		tenantID, docID)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ListLines: %w", err)
	}
	return lines, nil
}

// Save replaces the document's line set and updates the header columns
// (including the recomputed totals) in a single transaction.
func (r *documentRepo) Save(ctx context.Context, doc *domain.Document, lines []domain.DocumentLine) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("documentRepo.Save begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	doc.UpdatedAt = time.Now().UTC()
	headerQuery := `UPDATE documents SET
			doc_date = $1, seller_state = $2, counterparty_name = $3, counterparty_gstin = $4,
			counterparty_email = $5, counterparty_state = $6, gst_type = $7,
			discount_mode = $8, discount_value = $9,
			subtotal = $10, cgst = $11, sgst = $12, igst = $13, total_tax = $14,
			before_discount = $15, discount_amount = $16, round_off = $17, total = $18,
			notes = $19, updated_at = $20
		WHERE tenant_id = $21 AND id = $22`
	result, err := tx.ExecContext(ctx, headerQuery,
		doc.DocDate, doc.SellerState, doc.CounterpartyName, doc.CounterpartyGSTIN,
		doc.CounterpartyEmail, doc.CounterpartyState, doc.GSTType,
		doc.DiscountMode, doc.DiscountValue,
		doc.Subtotal, doc.CGST, doc.SGST, doc.IGST, doc.TotalTax,
		doc.BeforeDiscount, doc.DiscountAmount, doc.RoundOff, doc.Total,
		doc.Notes, doc.UpdatedAt, doc.TenantID, doc.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.Save header: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM document_lines WHERE tenant_id = $1 AND document_id = $2",
		doc.TenantID, doc.ID); err != nil {
		return fmt.Errorf("documentRepo.Save clear lines: %w", err)
	}

	lineQuery := `INSERT INTO document_lines (
			id, document_id, tenant_id, item_id, position, name, hsn_code, unit,
			quantity, rate, discount_mode, discount_value, discount_amount,
			tax_rate, cgst_rate, sgst_rate, igst_rate,
			taxable_amount, cgst_amount, sgst_amount, igst_amount, total,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	now := time.Now().UTC()
	for i := range lines {
		line := &lines[i]
		if line.ID == uuid.Nil {
			line.ID = uuid.New()
			line.CreatedAt = now
		}
		line.DocumentID = doc.ID
		line.TenantID = doc.TenantID
		line.Position = i
		line.UpdatedAt = now

		if _, err := tx.ExecContext(ctx, lineQuery,
			line.ID, line.DocumentID, line.TenantID, line.ItemID, line.Position,
			line.Name, line.HSNCode, line.Unit,
			line.Quantity, line.Rate, line.DiscountMode, line.DiscountValue, line.DiscountAmount,
			line.TaxRate, line.CGSTRate, line.SGSTRate, line.IGSTRate,
			line.TaxableAmount, line.CGSTAmount, line.SGSTAmount, line.IGSTAmount, line.Total,
			line.CreatedAt, line.UpdatedAt); err != nil {
			return fmt.Errorf("documentRepo.Save line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("documentRepo.Save commit: %w", err)
	}
	return nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, tenantID, docID uuid.UUID, status domain.DocumentStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4",
		status, time.Now().UTC(), tenantID, docID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM documents WHERE tenant_id = $1 AND id = $2", tenantID, docID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// NextSequence atomically advances and returns the per-tenant numbering
// counter for a document kind.
func (r *documentRepo) NextSequence(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind) (int64, error) {
	var next int64
	query := `INSERT INTO document_sequences (tenant_id, kind, current_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, kind)
		DO UPDATE SET current_value = document_sequences.current_value + 1
		RETURNING current_value`
	if err := r.db.GetContext(ctx, &next, query, tenantID, kind); err != nil {
		return 0, fmt.Errorf("documentRepo.NextSequence: %w", err)
	}
	return next, nil
}
