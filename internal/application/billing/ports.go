package billing

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación en PDF de una factura.
// La implementación (maroto) vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}
