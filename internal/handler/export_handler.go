package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoicestudio/internal/service"
)

// ExportHandler handles invoice download endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// PDF handles GET /api/v1/sessions/:id/export/pdf
func (h *ExportHandler) PDF(c *gin.Context) {
	h.serve(c, h.exportService.ExportPDF)
}

// CSV handles GET /api/v1/sessions/:id/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	h.serve(c, h.exportService.ExportCSV)
}

// XLSX handles GET /api/v1/sessions/:id/export/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	h.serve(c, h.exportService.ExportXLSX)
}

func (h *ExportHandler) serve(c *gin.Context, export func(context.Context, uuid.UUID) (*service.ExportResult, error)) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	result, err := export(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
