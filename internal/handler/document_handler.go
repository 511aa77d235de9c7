package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstdesk/internal/domain"
	"gstdesk/internal/gst"
	"gstdesk/internal/service"
)

// DocumentHandler handles commercial-document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
	dispatchService service.DispatchService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService, dispatchService service.DispatchService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, dispatchService: dispatchService}
}

// CreateDocumentRequest is the request body for creating a document.
type CreateDocumentRequest struct {
	Kind              string `json:"kind" binding:"required"`
	DocDate           string `json:"doc_date"`
	CounterpartyName  string `json:"counterparty_name"`
	CounterpartyGSTIN string `json:"counterparty_gstin"`
	CounterpartyEmail string `json:"counterparty_email"`
	CounterpartyState string `json:"counterparty_state"`
	Notes             string `json:"notes"`
}

// LineRequest is the request body for adding or editing a line. Numeric
// fields arrive as strings; unparseable values fall back to zero rather
// than rejecting the edit, so a half-typed field never blocks the form.
type LineRequest struct {
	ItemID          string `json:"item_id"`
	Name            string `json:"name"`
	HSNCode         string `json:"hsn_code"`
	Unit            string `json:"unit"`
	Quantity        string `json:"quantity"`
	Rate            string `json:"rate"`
	DiscountPercent string `json:"discount_percent"`
	DiscountAmount  string `json:"discount_amount"`
	TaxRate         string `json:"tax_rate"`
}

// DiscountRequest is the request body for the document-level discount.
type DiscountRequest struct {
	Percent string `json:"percent"`
	Amount  string `json:"amount"`
}

// parseAmount parses a numeric string, falling back to zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDiscount maps a percent/amount pair onto the tagged discount.
// A positive percentage wins over an amount.
func parseDiscount(percent, amount string) gst.Discount {
	if p := parseAmount(percent); p.IsPositive() {
		return gst.PercentDiscount(p)
	}
	if a := parseAmount(amount); a.IsPositive() {
		return gst.FixedDiscount(a)
	}
	return gst.Discount{}
}

func (r LineRequest) toDraft() service.LineDraft {
	draft := service.LineDraft{
		Name:     r.Name,
		HSNCode:  r.HSNCode,
		Unit:     r.Unit,
		Quantity: parseAmount(r.Quantity),
		Rate:     parseAmount(r.Rate),
		Discount: parseDiscount(r.DiscountPercent, r.DiscountAmount),
		TaxRate:  parseAmount(r.TaxRate),
	}
	if id, err := uuid.Parse(r.ItemID); err == nil && id != uuid.Nil {
		draft.ItemID = &id
	}
	return draft
}

// Create handles POST /api/v1/documents
// @Summary Create a document
// @Description Create a draft document with an auto-assigned number
// @Tags documents
// @Accept json
// @Produce json
// @Param request body CreateDocumentRequest true "Document details"
// @Success 201 {object} APIResponse{data=service.DocumentDetail} "Draft created"
// @Failure 400 {object} APIResponse "Invalid kind"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	input := service.CreateDocumentInput{
		Kind:              domain.DocumentKind(req.Kind),
		CounterpartyName:  req.CounterpartyName,
		CounterpartyGSTIN: req.CounterpartyGSTIN,
		CounterpartyEmail: req.CounterpartyEmail,
		CounterpartyState: req.CounterpartyState,
		Notes:             req.Notes,
	}
	if req.DocDate != "" {
		if d, err := time.Parse("2006-01-02", req.DocDate); err == nil {
			input.DocDate = d
		}
	}

	detail, err := h.documentService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, detail)
}

// List handles GET /api/v1/documents
// @Summary List documents
// @Description List documents for the tenant, optionally filtered by kind
// @Tags documents
// @Produce json
// @Param kind query string false "Document kind filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Document,meta=PagMeta} "Documents"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	kind := domain.DocumentKind(c.Query("kind"))
	docs, total, err := h.documentService.List(c.Request.Context(), tenantID, kind, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/documents/:id
// @Summary Get document by ID
// @Description Get a document header with its ordered lines and totals
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Document detail"
// @Failure 404 {object} APIResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	detail, err := h.documentService.Get(c.Request.Context(), tenantID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// AddLine handles POST /api/v1/documents/:id/lines
// @Summary Add a free-form line
// @Description Append a line to a draft document; totals are recomputed
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body LineRequest true "Line fields"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Updated detail"
// @Failure 409 {object} APIResponse "Document is not a draft"
// @Security BearerAuth
// @Router /documents/{id}/lines [post]
func (h *DocumentHandler) AddLine(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.documentService.AddLine(c.Request.Context(), tenantID, docID, req.toDraft())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// AddItem handles POST /api/v1/documents/:id/items
// @Summary Add a catalog item
// @Description Add an item to a draft; an existing line for the item has its quantity incremented
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body AddItemRequest true "Item and quantity"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Updated detail"
// @Failure 404 {object} APIResponse "Item not found"
// @Security BearerAuth
// @Router /documents/{id}/items [post]
func (h *DocumentHandler) AddItem(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}

	detail, err := h.documentService.AddItem(c.Request.Context(), tenantID, docID, itemID, parseAmount(req.Quantity))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// AddItemRequest is the request body for adding a catalog item to a document.
type AddItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity string `json:"quantity"`
}

// UpdateLine handles PUT /api/v1/documents/:id/lines/:lineId
// @Summary Edit a line
// @Description Replace the editable fields of one line; only that line is recomputed
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param lineId path string true "Line ID (UUID)"
// @Param request body LineRequest true "Line fields"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Updated detail"
// @Failure 404 {object} APIResponse "Line not found"
// @Security BearerAuth
// @Router /documents/{id}/lines/{lineId} [put]
func (h *DocumentHandler) UpdateLine(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}
	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid line ID")
		return
	}

	var req LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.documentService.UpdateLine(c.Request.Context(), tenantID, docID, lineID, req.toDraft())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// RemoveLine handles DELETE /api/v1/documents/:id/lines/:lineId
// @Summary Remove a line
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param lineId path string true "Line ID (UUID)"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Updated detail"
// @Failure 404 {object} APIResponse "Line not found"
// @Security BearerAuth
// @Router /documents/{id}/lines/{lineId} [delete]
func (h *DocumentHandler) RemoveLine(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}
	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid line ID")
		return
	}

	detail, err := h.documentService.RemoveLine(c.Request.Context(), tenantID, docID, lineID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// SetCounterpartyState handles PUT /api/v1/documents/:id/counterparty-state
// @Summary Change the counterparty state
// @Description Reclassify the supply and re-split every line's tax between CGST/SGST and IGST
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body StateRequest true "New counterparty state"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Updated detail"
// @Failure 400 {object} APIResponse "State missing"
// @Security BearerAuth
// @Router /documents/{id}/counterparty-state [put]
func (h *DocumentHandler) SetCounterpartyState(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.documentService.SetCounterpartyState(c.Request.Context(), tenantID, docID, strings.TrimSpace(req.State))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// StateRequest is the request body for changing the counterparty state.
type StateRequest struct {
	State string `json:"state" binding:"required"`
}

// SetDiscount handles PUT /api/v1/documents/:id/discount
// @Summary Set the document discount
// @Description Replace the document-level discount; a positive percentage wins over an amount
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body DiscountRequest true "Discount"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Updated detail"
// @Security BearerAuth
// @Router /documents/{id}/discount [put]
func (h *DocumentHandler) SetDiscount(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.documentService.SetDiscount(c.Request.Context(), tenantID, docID, parseDiscount(req.Percent, req.Amount))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Issue handles POST /api/v1/documents/:id/issue
// @Summary Issue a draft
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Issued document"
// @Failure 409 {object} APIResponse "Document is not a draft"
// @Security BearerAuth
// @Router /documents/{id}/issue [post]
func (h *DocumentHandler) Issue(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	detail, err := h.documentService.Issue(c.Request.Context(), tenantID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Void handles POST /api/v1/documents/:id/void
// @Summary Void an issued document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} APIResponse{data=service.DocumentDetail} "Voided document"
// @Failure 409 {object} APIResponse "Document is not issued"
// @Security BearerAuth
// @Router /documents/{id}/void [post]
func (h *DocumentHandler) Void(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	detail, err := h.documentService.Void(c.Request.Context(), tenantID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Delete handles DELETE /api/v1/documents/:id
// @Summary Delete a draft
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} APIResponse "Deleted"
// @Failure 409 {object} APIResponse "Only drafts can be deleted"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), tenantID, docID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document deleted"})
}

// Dispatch handles POST /api/v1/documents/:id/dispatch
// @Summary Email an issued document
// @Description Send the issued document summary to the counterparty email
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} APIResponse "Dispatched"
// @Failure 400 {object} APIResponse "No counterparty email"
// @Failure 409 {object} APIResponse "Document is not issued"
// @Security BearerAuth
// @Router /documents/{id}/dispatch [post]
func (h *DocumentHandler) Dispatch(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	if err := h.dispatchService.Send(c.Request.Context(), tenantID, docID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document dispatched"})
}
