package domain

// DocumentKind identifies the commercial-document form.
type DocumentKind string

const (
	KindInvoice      DocumentKind = "invoice"
	KindQuotation    DocumentKind = "quotation"
	KindSalesOrder   DocumentKind = "sales_order"
	KindPurchaseBill DocumentKind = "purchase_bill"
	KindGoodsReceipt DocumentKind = "goods_receipt"
	KindCreditNote   DocumentKind = "credit_note"
)

// KindPrefixes maps each document kind to its number prefix.
var KindPrefixes = map[DocumentKind]string{
	KindInvoice:      "INV",
	KindQuotation:    "QTN",
	KindSalesOrder:   "SO",
	KindPurchaseBill: "PB",
	KindGoodsReceipt: "GRN",
	KindCreditNote:   "CN",
}

// Valid reports whether k is one of the supported document kinds.
func (k DocumentKind) Valid() bool {
	_, ok := KindPrefixes[k]
	return ok
}

// DocumentStatus represents the lifecycle of a document.
type DocumentStatus string

const (
	DocumentStatusDraft  DocumentStatus = "draft"
	DocumentStatusIssued DocumentStatus = "issued"
	DocumentStatusVoid   DocumentStatus = "void"
)

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// FileType represents the allowed attachment file types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// FileStatus represents the lifecycle of an uploaded attachment.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)
