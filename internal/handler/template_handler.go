package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/service"
)

// TemplateHandler handles template catalog and application endpoints.
type TemplateHandler struct {
	invoiceService service.InvoiceService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(invoiceService service.InvoiceService) *TemplateHandler {
	return &TemplateHandler{invoiceService: invoiceService}
}

// List handles GET /api/v1/templates
func (h *TemplateHandler) List(c *gin.Context) {
	RespondOK(c, h.invoiceService.ListTemplates())
}

// Apply handles POST /api/v1/sessions/:id/template
func (h *TemplateHandler) Apply(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req struct {
		TemplateID domain.TemplateID `json:"template_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "template_id is required")
		return
	}

	doc, err := h.invoiceService.ApplyTemplate(c.Request.Context(), id, req.TemplateID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}
