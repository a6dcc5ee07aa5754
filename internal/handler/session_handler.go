package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoicestudio/internal/domain"
	"invoicestudio/internal/service"
)

// SessionHandler handles invoice editing session endpoints.
type SessionHandler struct {
	invoiceService service.InvoiceService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(invoiceService service.InvoiceService) *SessionHandler {
	return &SessionHandler{invoiceService: invoiceService}
}

// parseSessionID reads and validates the :id path parameter.
// Returns false if the ID is malformed (error response already written).
func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_SESSION_ID", "session id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	session, err := h.invoiceService.CreateSession(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// GetDocument handles GET /api/v1/sessions/:id/document
func (h *SessionHandler) GetDocument(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	doc, err := h.invoiceService.GetDocument(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// ReplaceDocument handles PUT /api/v1/sessions/:id/document
func (h *SessionHandler) ReplaceDocument(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req domain.InvoiceData
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a valid invoice document")
		return
	}

	doc, err := h.invoiceService.ReplaceDocument(c.Request.Context(), id, &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteSession(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddLineItem handles POST /api/v1/sessions/:id/items
func (h *SessionHandler) AddLineItem(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req service.AddLineItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "description, quantity, and unit_price must be valid")
		return
	}

	doc, err := h.invoiceService.AddLineItem(c.Request.Context(), id, &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// UpdateLineItem handles PATCH /api/v1/sessions/:id/items/:itemID
func (h *SessionHandler) UpdateLineItem(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req service.UpdateLineItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "line item fields must be valid")
		return
	}

	doc, err := h.invoiceService.UpdateLineItem(c.Request.Context(), id, c.Param("itemID"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// RemoveLineItem handles DELETE /api/v1/sessions/:id/items/:itemID
func (h *SessionHandler) RemoveLineItem(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	doc, err := h.invoiceService.RemoveLineItem(c.Request.Context(), id, c.Param("itemID"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// SetLogo handles PUT /api/v1/sessions/:id/logo
func (h *SessionHandler) SetLogo(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req struct {
		Logo string `json:"logo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "logo must be a data URL string or empty to clear")
		return
	}

	doc, err := h.invoiceService.SetLogo(c.Request.Context(), id, req.Logo)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Preview handles GET /api/v1/sessions/:id/preview
func (h *SessionHandler) Preview(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	layout, err := h.invoiceService.Preview(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, layout)
}
