package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstdesk/internal/gst"
)

// Tenant represents an isolated organizational tenant. The seller state
// on the tenant is the fixed side of every jurisdiction classification.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	State     string    `db:"state" json:"state"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Item is a catalog entry. Rate is the selling price inclusive of tax;
// TaxRate is the aggregate GST percentage applied when the item is added
// to a document.
type Item struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	TenantID  uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Name      string          `db:"name" json:"name"`
	HSNCode   string          `db:"hsn_code" json:"hsn_code"`
	Unit      string          `db:"unit" json:"unit"`
	Rate      decimal.Decimal `db:"rate" json:"rate"`
	TaxRate   decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	IsActive  bool            `db:"is_active" json:"is_active"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Document is one commercial document (invoice, quotation, sales order,
// purchase bill, goods receipt note, or credit note). Totals columns are
// pure projections of the lines plus the document discount; they are
// recomputed on every mutation and never edited directly.
type Document struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	TenantID          uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Kind              DocumentKind    `db:"kind" json:"kind"`
	Number            string          `db:"number" json:"number"`
	Status            DocumentStatus  `db:"status" json:"status"`
	DocDate           time.Time       `db:"doc_date" json:"doc_date"`
	SellerState       string          `db:"seller_state" json:"seller_state"`
	CounterpartyName  string          `db:"counterparty_name" json:"counterparty_name"`
	CounterpartyGSTIN string          `db:"counterparty_gstin" json:"counterparty_gstin"`
	CounterpartyEmail string          `db:"counterparty_email" json:"counterparty_email"`
	CounterpartyState string          `db:"counterparty_state" json:"counterparty_state"`
	GSTType           gst.GSTType     `db:"gst_type" json:"gst_type"`
	DiscountMode      string          `db:"discount_mode" json:"discount_mode"`
	DiscountValue     decimal.Decimal `db:"discount_value" json:"discount_value"`
	Subtotal          decimal.Decimal `db:"subtotal" json:"subtotal"`
	CGST              decimal.Decimal `db:"cgst" json:"cgst"`
	SGST              decimal.Decimal `db:"sgst" json:"sgst"`
	IGST              decimal.Decimal `db:"igst" json:"igst"`
	TotalTax          decimal.Decimal `db:"total_tax" json:"total_tax"`
	BeforeDiscount    decimal.Decimal `db:"before_discount" json:"before_discount"`
	DiscountAmount    decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	RoundOff          decimal.Decimal `db:"round_off" json:"round_off"`
	Total             decimal.Decimal `db:"total" json:"total"`
	Notes             string          `db:"notes" json:"notes"`
	CreatedBy         uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// Discount returns the document-level discount as the engine's tagged
// variant.
func (d *Document) Discount() gst.Discount {
	return gst.Discount{Mode: gst.DiscountMode(d.DiscountMode), Value: d.DiscountValue}
}

// ApplyTotals copies an aggregation result onto the document columns.
func (d *Document) ApplyTotals(t gst.Totals) {
	d.Subtotal = t.Subtotal
	d.CGST = t.CGST
	d.SGST = t.SGST
	d.IGST = t.IGST
	d.TotalTax = t.TotalTax
	d.BeforeDiscount = t.BeforeDiscount
	d.DiscountAmount = t.DiscountAmount
	d.RoundOff = t.RoundOff
	d.Total = t.Total
}

// DocumentLine is one product/service row of a document. Rate is the
// unit price inclusive of tax; TaxableAmount and the component amounts
// are derived by the engine and never edited directly.
type DocumentLine struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	DocumentID     uuid.UUID       `db:"document_id" json:"document_id"`
	TenantID       uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ItemID         *uuid.UUID      `db:"item_id" json:"item_id"`
	Position       int             `db:"position" json:"position"`
	Name           string          `db:"name" json:"name"`
	HSNCode        string          `db:"hsn_code" json:"hsn_code"`
	Unit           string          `db:"unit" json:"unit"`
	Quantity       decimal.Decimal `db:"quantity" json:"quantity"`
	Rate           decimal.Decimal `db:"rate" json:"rate"`
	DiscountMode   string          `db:"discount_mode" json:"discount_mode"`
	DiscountValue  decimal.Decimal `db:"discount_value" json:"discount_value"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	TaxRate        decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	CGSTRate       decimal.Decimal `db:"cgst_rate" json:"cgst_rate"`
	SGSTRate       decimal.Decimal `db:"sgst_rate" json:"sgst_rate"`
	IGSTRate       decimal.Decimal `db:"igst_rate" json:"igst_rate"`
	TaxableAmount  decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount     decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount     decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount     decimal.Decimal `db:"igst_amount" json:"igst_amount"`
	Total          decimal.Decimal `db:"total" json:"total"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// AsLine converts the stored row into the engine's value type.
func (l *DocumentLine) AsLine() gst.Line {
	return gst.Line{
		Quantity:       l.Quantity,
		Rate:           l.Rate,
		Discount:       gst.Discount{Mode: gst.DiscountMode(l.DiscountMode), Value: l.DiscountValue},
		DiscountAmount: l.DiscountAmount,
		TaxRate:        l.TaxRate,
		CGSTRate:       l.CGSTRate,
		SGSTRate:       l.SGSTRate,
		IGSTRate:       l.IGSTRate,
		TaxableAmount:  l.TaxableAmount,
		CGSTAmount:     l.CGSTAmount,
		SGSTAmount:     l.SGSTAmount,
		IGSTAmount:     l.IGSTAmount,
		Total:          l.Total,
	}
}

// ApplyLine copies an engine computation result back onto the row.
func (l *DocumentLine) ApplyLine(line gst.Line) {
	l.Quantity = line.Quantity
	l.Rate = line.Rate
	l.DiscountMode = string(line.Discount.Mode)
	l.DiscountValue = line.Discount.Value
	l.DiscountAmount = line.DiscountAmount
	l.TaxRate = line.TaxRate
	l.CGSTRate = line.CGSTRate
	l.SGSTRate = line.SGSTRate
	l.IGSTRate = line.IGSTRate
	l.TaxableAmount = line.TaxableAmount
	l.CGSTAmount = line.CGSTAmount
	l.SGSTAmount = line.SGSTAmount
	l.IGSTAmount = line.IGSTAmount
	l.Total = line.Total
}

// FileMeta stores metadata about a document attachment (signed copy,
// goods-receipt photo) uploaded to object storage.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	DocumentID   uuid.UUID  `db:"document_id" json:"document_id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
