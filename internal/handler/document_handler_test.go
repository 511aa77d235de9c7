package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstdesk/internal/domain"
	"gstdesk/internal/gst"
	"gstdesk/internal/middleware"
	"gstdesk/internal/service"
	"gstdesk/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseAmount(t *testing.T) {
	assert.True(t, parseAmount("118.50").Equal(decimal.RequireFromString("118.50")))
	assert.True(t, parseAmount(" 42 ").Equal(decimal.NewFromInt(42)))
	assert.True(t, parseAmount("").IsZero())
	assert.True(t, parseAmount("12a").IsZero())
	assert.True(t, parseAmount("1,000").IsZero())
}

func TestParseDiscount(t *testing.T) {
	// A positive percentage wins even when an amount is also present.
	d := parseDiscount("10", "500")
	assert.Equal(t, gst.DiscountPercent, d.Mode)
	assert.True(t, d.Value.Equal(decimal.NewFromInt(10)))

	d = parseDiscount("0", "500")
	assert.Equal(t, gst.DiscountFixed, d.Mode)
	assert.True(t, d.Value.Equal(decimal.NewFromInt(500)))

	d = parseDiscount("garbage", "250")
	assert.Equal(t, gst.DiscountFixed, d.Mode)

	d = parseDiscount("", "")
	assert.Equal(t, gst.Discount{}, d)
}

// injectAuth sets the context keys the auth middleware would.
func injectAuth(tenantID, userID uuid.UUID, role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyTenantID, tenantID)
		c.Set(middleware.ContextKeyUserID, userID)
		c.Set(middleware.ContextKeyRole, string(role))
		c.Next()
	}
}

type documentHandlerFixture struct {
	documentService *mocks.MockDocumentService
	dispatchService *mocks.MockDispatchService
	router          *gin.Engine
	tenantID        uuid.UUID
	userID          uuid.UUID
}

func newDocumentHandlerFixture() *documentHandlerFixture {
	f := &documentHandlerFixture{
		documentService: new(mocks.MockDocumentService),
		dispatchService: new(mocks.MockDispatchService),
		tenantID:        uuid.New(),
		userID:          uuid.New(),
	}
	h := NewDocumentHandler(f.documentService, f.dispatchService)

	f.router = gin.New()
	g := f.router.Group("/api/v1", injectAuth(f.tenantID, f.userID, domain.RoleMember))
	g.POST("/documents", h.Create)
	g.GET("/documents/:id", h.GetByID)
	g.POST("/documents/:id/lines", h.AddLine)
	g.POST("/documents/:id/items", h.AddItem)
	g.PUT("/documents/:id/discount", h.SetDiscount)
	g.POST("/documents/:id/dispatch", h.Dispatch)
	return f
}

func (f *documentHandlerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func emptyDetail() *service.DocumentDetail {
	return &service.DocumentDetail{
		Document: &domain.Document{ID: uuid.New(), Status: domain.DocumentStatusDraft},
		Lines:    []domain.DocumentLine{},
	}
}

func TestDocumentHandlerCreate(t *testing.T) {
	f := newDocumentHandlerFixture()

	f.documentService.On("Create", mock.Anything, f.tenantID, f.userID, mock.MatchedBy(func(in service.CreateDocumentInput) bool {
		return in.Kind == domain.KindInvoice && in.CounterpartyName == "Bharat Traders"
	})).Return(emptyDetail(), nil)

	w := f.do(t, http.MethodPost, "/api/v1/documents", gin.H{
		"kind":              "invoice",
		"counterparty_name": "Bharat Traders",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestDocumentHandlerCreateInvalidKind(t *testing.T) {
	f := newDocumentHandlerFixture()

	f.documentService.On("Create", mock.Anything, f.tenantID, f.userID, mock.Anything).
		Return(nil, domain.ErrInvalidDocumentKind)

	w := f.do(t, http.MethodPost, "/api/v1/documents", gin.H{"kind": "receipt"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_DOCUMENT_KIND", resp.Error.Code)
}

func TestDocumentHandlerAddLineParsesNumericStrings(t *testing.T) {
	f := newDocumentHandlerFixture()
	docID := uuid.New()

	f.documentService.On("AddLine", mock.Anything, f.tenantID, docID, mock.MatchedBy(func(d service.LineDraft) bool {
		return d.Quantity.Equal(decimal.NewFromInt(2)) &&
			d.Rate.Equal(decimal.RequireFromString("118.5")) &&
			d.TaxRate.Equal(decimal.NewFromInt(18))
	})).Return(emptyDetail(), nil)

	w := f.do(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/lines", gin.H{
		"name":     "Steel Bracket",
		"quantity": "2",
		"rate":     "118.5",
		"tax_rate": "18",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	f.documentService.AssertExpectations(t)
}

func TestDocumentHandlerAddLineUnparseableFallsBackToZero(t *testing.T) {
	f := newDocumentHandlerFixture()
	docID := uuid.New()

	f.documentService.On("AddLine", mock.Anything, f.tenantID, docID, mock.MatchedBy(func(d service.LineDraft) bool {
		return d.Quantity.IsZero() && d.Rate.IsZero()
	})).Return(emptyDetail(), nil)

	w := f.do(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/lines", gin.H{
		"name":     "Half-typed row",
		"quantity": "2x",
		"rate":     "abc",
	})

	// A half-typed field never blocks the edit.
	assert.Equal(t, http.StatusOK, w.Code)
	f.documentService.AssertExpectations(t)
}

func TestDocumentHandlerAddLineRejectsBadDocumentID(t *testing.T) {
	f := newDocumentHandlerFixture()

	w := f.do(t, http.MethodPost, "/api/v1/documents/not-a-uuid/lines", gin.H{"quantity": "1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.documentService.AssertNotCalled(t, "AddLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandlerAddLineOnIssuedDocument(t *testing.T) {
	f := newDocumentHandlerFixture()
	docID := uuid.New()

	f.documentService.On("AddLine", mock.Anything, f.tenantID, docID, mock.Anything).
		Return(nil, domain.ErrDocumentNotDraft)

	w := f.do(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/lines", gin.H{"quantity": "1"})

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DOCUMENT_NOT_DRAFT", resp.Error.Code)
}

func TestDocumentHandlerAddItemDefaultsQuantity(t *testing.T) {
	f := newDocumentHandlerFixture()
	docID := uuid.New()
	itemID := uuid.New()

	f.documentService.On("AddItem", mock.Anything, f.tenantID, docID, itemID, decimal.Zero).
		Return(emptyDetail(), nil)

	w := f.do(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/items", gin.H{
		"item_id": itemID.String(),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	f.documentService.AssertExpectations(t)
}

func TestDocumentHandlerSetDiscountPercentWins(t *testing.T) {
	f := newDocumentHandlerFixture()
	docID := uuid.New()

	f.documentService.On("SetDiscount", mock.Anything, f.tenantID, docID,
		gst.PercentDiscount(decimal.NewFromInt(5))).Return(emptyDetail(), nil)

	w := f.do(t, http.MethodPut, "/api/v1/documents/"+docID.String()+"/discount", gin.H{
		"percent": "5",
		"amount":  "999",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	f.documentService.AssertExpectations(t)
}

func TestDocumentHandlerDispatch(t *testing.T) {
	f := newDocumentHandlerFixture()
	docID := uuid.New()

	f.dispatchService.On("Send", mock.Anything, f.tenantID, docID).Return(nil)

	w := f.do(t, http.MethodPost, "/api/v1/documents/"+docID.String()+"/dispatch", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	f.dispatchService.AssertExpectations(t)
}

func TestDocumentHandlerRequiresAuthContext(t *testing.T) {
	documentService := new(mocks.MockDocumentService)
	h := NewDocumentHandler(documentService, new(mocks.MockDispatchService))

	r := gin.New()
	r.GET("/api/v1/documents/:id", h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	documentService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
