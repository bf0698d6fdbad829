package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest entrada para crear una factura (nace pendiente de pago).
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" validate:"required"`
	Amt      *decimal.Decimal `json:"amt" validate:"required"`
}

// UpdateInvoiceRequest entrada de PATCH /invoices/:id.
// Paid ausente = solo monto; true = pagada hoy; false = pendiente.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" validate:"required"`
	Paid *bool            `json:"paid"`
}

// InvoiceResponse salida de una factura. Fechas en formato YYYY-MM-DD.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceEnvelope sobre {invoice: ...}.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceListResponse sobre {invoices: [...]}.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
