package billing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// PDFUseCase genera el PDF de una factura junto con los datos de su empresa.
type PDFUseCase struct {
	tx        usecase.TxRunner
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(tx usecase.TxRunner, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{tx: tx, generator: generator}
}

// DownloadInvoicePDF lee factura y empresa en una misma transacción y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	var (
		invoice *entity.Invoice
		company *entity.Company
	)
	err = uc.tx.Run(ctx, func(r usecase.Repositories) error {
		inv, err := r.Invoices.GetByID(ctx, invoiceID)
		if err != nil {
			return fmt.Errorf("pdf: obtener factura: %w", err)
		}
		if inv == nil {
			return domain.NewNotFound("factura", strconv.FormatInt(invoiceID, 10))
		}
		comp, err := r.Companies.GetByCode(ctx, inv.CompCode)
		if err != nil {
			return fmt.Errorf("pdf: obtener empresa: %w", err)
		}
		if comp == nil {
			// No debería ocurrir: la FK borra las facturas junto con la empresa.
			return fmt.Errorf("pdf: factura %d sin empresa %q", invoiceID, inv.CompCode)
		}
		invoice, company = inv, comp
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, invoice, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice_%d.pdf", invoice.ID), nil
}
