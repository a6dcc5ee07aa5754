package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/handler"
	"invoicestudio/internal/service"
	"invoicestudio/mocks"
)

func newExportHandler() (*handler.ExportHandler, *mocks.MockExportService) {
	mockSvc := new(mocks.MockExportService)
	h := handler.NewExportHandler(mockSvc)
	return h, mockSvc
}

func TestExportHandler_PDF_Success(t *testing.T) {
	h, mockSvc := newExportHandler()

	id := uuid.New()
	mockSvc.On("ExportPDF", mock.Anything, id).Return(&service.ExportResult{
		Filename:    "invoice-INV-001.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3 fake"),
	}, nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/export/pdf", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.PDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="invoice-INV-001.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 fake", w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_CSV_Success(t *testing.T) {
	h, mockSvc := newExportHandler()

	id := uuid.New()
	mockSvc.On("ExportCSV", mock.Anything, id).Return(&service.ExportResult{
		Filename:    "invoice-INV-001.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte("header\nrow\n"),
	}, nil)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/export/csv", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.CSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_XLSX_SessionNotFound(t *testing.T) {
	h, mockSvc := newExportHandler()

	id := uuid.New()
	mockSvc.On("ExportXLSX", mock.Anything, id).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/export/xlsx", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.XLSX(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestExportHandler_PDF_ExportFailed(t *testing.T) {
	h, mockSvc := newExportHandler()

	id := uuid.New()
	mockSvc.On("ExportPDF", mock.Anything, id).Return(nil, domain.ErrExportFailed)

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/"+id.String()+"/export/pdf", nil,
		gin.Params{{Key: "id", Value: id.String()}})

	h.PDF(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EXPORT_FAILED", resp.Error.Code)
}

func TestExportHandler_MalformedID(t *testing.T) {
	h, _ := newExportHandler()

	w := httptest.NewRecorder()
	c := testContext(w, http.MethodGet, "/api/v1/sessions/nope/export/pdf", nil,
		gin.Params{{Key: "id", Value: "nope"}})

	h.PDF(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
