package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invoicestudio/internal/design"
	"invoicestudio/internal/domain"
	"invoicestudio/internal/handler"
	"invoicestudio/internal/money"
	"invoicestudio/internal/render"
	"invoicestudio/internal/service"
	"invoicestudio/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionHandler() (*handler.SessionHandler, *mocks.MockInvoiceService) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewSessionHandler(mockSvc)
	return h, mockSvc
}

func testContext(w *httptest.ResponseRecorder, method, path string, body []byte, params gin.Params) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	if body != nil {
		c.Request, _ = http.NewRequest(method, path, bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request, _ = http.NewRequest(method, path, http.NoBody)
	}
	c.Params = params
	return c
}

func sampleDocument() *domain.InvoiceData {
	return domain.NewDefaultInvoice(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
}

func previewLayout() *render.Layout {
	doc := sampleDocument()
	dsg := design.EffectiveDesign(doc)
	layout := render.NewRegistry().Render(doc, dsg, money.Calculate(doc.Items, doc.TaxRate))
	return &layout
}

// --- Create ---

func TestSessionHandler_Create_Success(t *testing.T) {
	h, mockSvc := newSessionHandler()

	session := &domain.Session{
		ID:       uuid.New(),
		Document: sampleDocument(),
	}
	mockSvc.On("CreateSession", mock.Anything).Return(session, nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/sessions", nil, nil)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, session.ID.String(), data["id"])
	mockSvc.AssertExpectations(t)
}

// --- GetDocument ---

func TestSessionHandler_GetDocument_Success(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	mockSvc.On("GetDocument", mock.Anything, id).Return(sampleDocument(), nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/document", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.GetDocument(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "INV-001", data["invoice_number"])
	mockSvc.AssertExpectations(t)
}

func TestSessionHandler_GetDocument_NotFound(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	mockSvc.On("GetDocument", mock.Anything, id).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/document", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.GetDocument(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestSessionHandler_GetDocument_MalformedID(t *testing.T) {
	h, _ := newSessionHandler()

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/not-a-uuid/document", nil,
		gin.Params{{Key: "id", Value: "not-a-uuid"}})

	h.GetDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_SESSION_ID", resp.Error.Code)
}

// --- ReplaceDocument ---

func TestSessionHandler_ReplaceDocument_Success(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	doc := sampleDocument()
	doc.InvoiceNumber = "INV-042"

	mockSvc.On("ReplaceDocument", mock.Anything, id, mock.MatchedBy(func(d *domain.InvoiceData) bool {
		return d.InvoiceNumber == "INV-042"
	})).Return(doc, nil)

	body, _ := json.Marshal(doc)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPut, "/api/v1/sessions/"+id.String()+"/document", body,
		gin.Params{{Key: "id", Value: id.String()}})

	h.ReplaceDocument(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSessionHandler_ReplaceDocument_InvalidBody(t *testing.T) {
	h, _ := newSessionHandler()

	id := uuid.New()
	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPut, "/api/v1/sessions/"+id.String()+"/document", []byte("{not json"),
		gin.Params{{Key: "id", Value: id.String()}})

	h.ReplaceDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionHandler_ReplaceDocument_ValidationError(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	mockSvc.On("ReplaceDocument", mock.Anything, id, mock.Anything).
		Return(nil, domain.ErrNoLineItems)

	body, _ := json.Marshal(sampleDocument())

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPut, "/api/v1/sessions/"+id.String()+"/document", body,
		gin.Params{{Key: "id", Value: id.String()}})

	h.ReplaceDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NO_LINE_ITEMS", resp.Error.Code)
}

// --- Delete ---

func TestSessionHandler_Delete_Success(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	mockSvc.On("DeleteSession", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodDelete, "/api/v1/sessions/"+id.String(), nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSvc.AssertExpectations(t)
}

// --- Line items ---

func TestSessionHandler_AddLineItem_Success(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	doc := sampleDocument()

	mockSvc.On("AddLineItem", mock.Anything, id, mock.MatchedBy(func(in *service.AddLineItemInput) bool {
		return in.Description == "Consulting" && in.Quantity == 2 && in.UnitPrice == 150
	})).Return(doc, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"description": "Consulting",
		"quantity":    2,
		"unit_price":  150,
	})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPost, "/api/v1/sessions/"+id.String()+"/items", body,
		gin.Params{{Key: "id", Value: id.String()}})

	h.AddLineItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSessionHandler_UpdateLineItem_Success(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	doc := sampleDocument()

	mockSvc.On("UpdateLineItem", mock.Anything, id, "item-1", mock.MatchedBy(func(in *service.UpdateLineItemInput) bool {
		return in.Quantity != nil && *in.Quantity == 4 && in.Description == nil
	})).Return(doc, nil)

	body, _ := json.Marshal(map[string]interface{}{"quantity": 4})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPatch, "/api/v1/sessions/"+id.String()+"/items/item-1", body,
		gin.Params{{Key: "id", Value: id.String()}, {Key: "itemID", Value: "item-1"}})

	h.UpdateLineItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSessionHandler_RemoveLineItem_LastItem(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	mockSvc.On("RemoveLineItem", mock.Anything, id, "item-1").
		Return(nil, domain.ErrLastLineItem)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodDelete, "/api/v1/sessions/"+id.String()+"/items/item-1", nil,
		gin.Params{{Key: "id", Value: id.String()}, {Key: "itemID", Value: "item-1"}})

	h.RemoveLineItem(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "LAST_LINE_ITEM", resp.Error.Code)
}

// --- SetLogo ---

func TestSessionHandler_SetLogo_Clear(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	doc := sampleDocument()
	mockSvc.On("SetLogo", mock.Anything, id, "").Return(doc, nil)

	body, _ := json.Marshal(map[string]string{"logo": ""})

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodPut, "/api/v1/sessions/"+id.String()+"/logo", body,
		gin.Params{{Key: "id", Value: id.String()}})

	h.SetLogo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

// --- Preview ---

func TestSessionHandler_Preview_Success(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	mockSvc.On("Preview", mock.Anything, id).Return(previewLayout(), nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/preview", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "standard", data["template_id"])
}

func TestSessionHandler_Preview_NotFound(t *testing.T) {
	h, mockSvc := newSessionHandler()

	id := uuid.New()
	mockSvc.On("Preview", mock.Anything, id).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/preview", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.Preview(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
