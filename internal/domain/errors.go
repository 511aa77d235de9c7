package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTenantInactive         = errors.New("tenant is inactive")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateEmail         = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug    = errors.New("tenant slug already exists")
	ErrInvalidDocumentKind    = errors.New("invalid document kind")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrDocumentNotDraft       = errors.New("document is not editable in its current status")
	ErrDocumentNotIssued      = errors.New("document has not been issued")
	ErrLineNotFound           = errors.New("document line not found")
	ErrItemNotFound           = errors.New("catalog item not found")
	ErrItemInactive           = errors.New("catalog item is inactive")
	ErrStateRequired          = errors.New("seller and counterparty state are required")
	ErrCounterpartyEmailEmpty = errors.New("counterparty email address is missing")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed           = errors.New("file upload to storage failed")
)
