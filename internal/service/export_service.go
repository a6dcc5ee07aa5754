package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"invoicestudio/internal/csvexport"
	"invoicestudio/internal/design"
	"invoicestudio/internal/domain"
	"invoicestudio/internal/export/pdf"
	"invoicestudio/internal/export/xlsx"
	"invoicestudio/internal/money"
	"invoicestudio/internal/render"
)

// ExportResult carries a generated file and its download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService defines the document export contract.
type ExportService interface {
	ExportPDF(ctx context.Context, sessionID uuid.UUID) (*ExportResult, error)
	ExportCSV(ctx context.Context, sessionID uuid.UUID) (*ExportResult, error)
	ExportXLSX(ctx context.Context, sessionID uuid.UUID) (*ExportResult, error)
}

type exportService struct {
	invoiceSvc InvoiceService
	registry   *render.Registry
}

// NewExportService creates a new ExportService implementation.
func NewExportService(invoiceSvc InvoiceService, registry *render.Registry) ExportService {
	return &exportService{invoiceSvc: invoiceSvc, registry: registry}
}

func (s *exportService) ExportPDF(ctx context.Context, sessionID uuid.UUID) (*ExportResult, error) {
	doc, err := s.invoiceSvc.GetDocument(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	dsg := design.EffectiveDesign(doc)
	totals := money.Calculate(doc.Items, doc.TaxRate)
	layout := s.registry.Render(doc, dsg, totals)

	data, err := pdf.Export(&layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return &ExportResult{
		Filename:    csvexport.BuildFilename(doc.InvoiceNumber, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *exportService) ExportCSV(ctx context.Context, sessionID uuid.UUID) (*ExportResult, error) {
	doc, err := s.invoiceSvc.GetDocument(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	totals := money.Calculate(doc.Items, doc.TaxRate)

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	if err := w.WriteInvoice(doc, totals); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return &ExportResult{
		Filename:    csvexport.BuildFilename(doc.InvoiceNumber, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) ExportXLSX(ctx context.Context, sessionID uuid.UUID) (*ExportResult, error) {
	doc, err := s.invoiceSvc.GetDocument(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	totals := money.Calculate(doc.Items, doc.TaxRate)

	data, err := xlsx.Export(doc, totals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return &ExportResult{
		Filename:    csvexport.BuildFilename(doc.InvoiceNumber, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}
