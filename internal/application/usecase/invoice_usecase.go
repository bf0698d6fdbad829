package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceUseCase casos de uso de facturas, incluida la transición de pago en el update.
type InvoiceUseCase struct {
	repos Repositories
	tx    TxRunner
	now   func() time.Time
}

// NewInvoiceUseCase construye el caso de uso con el reloj del sistema.
func NewInvoiceUseCase(repos Repositories, tx TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{repos: repos, tx: tx, now: time.Now}
}

// WithClock reemplaza el reloj (fechas add_date y paid_date).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.repos.Invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Create crea una factura pendiente de pago con fecha de hoy.
// Una empresa inexistente la rechaza la clave foránea (domain.ErrInvalidInput).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CompCode == "" {
		return nil, domain.Invalid("comp_code es requerido")
	}
	if err := validateAmt(in.Amt); err != nil {
		return nil, err
	}
	invoice := &entity.Invoice{
		CompCode: in.CompCode,
		Amt:      *in.Amt,
		Payment:  entity.Unpaid(),
		AddDate:  entity.DateOf(uc.now()),
	}
	if err := uc.repos.Invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(invoice)
	return &out, nil
}

// Get obtiene una factura por ID.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repos.Invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.NewNotFound("factura", strconv.FormatInt(id, 10))
	}
	out := toInvoiceResponse(invoice)
	return &out, nil
}

// Update bloquea la fila, aplica monto + transición de pago y la reescribe, todo en una tx:
//   - paid ausente: solo monto;
//   - paid true: pagada con fecha de hoy (aunque ya estuviera pagada);
//   - paid false: pendiente, sin fecha.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var out dto.InvoiceResponse
	err := uc.tx.Run(ctx, func(r Repositories) error {
		invoice, err := r.Invoices.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.NewNotFound("factura", strconv.FormatInt(id, 10))
		}
		if err := validateAmt(in.Amt); err != nil {
			return err
		}
		invoice.Apply(entity.TransitionFor(in.Paid), *in.Amt, uc.now())
		if err := r.Invoices.Update(ctx, invoice); err != nil {
			return err
		}
		out = toInvoiceResponse(invoice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una factura por ID.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(r Repositories) error {
		invoice, err := r.Invoices.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.NewNotFound("factura", strconv.FormatInt(id, 10))
		}
		return r.Invoices.Delete(ctx, id)
	})
}

func validateAmt(amt *decimal.Decimal) error {
	if amt == nil {
		return domain.Invalid("amt es requerido")
	}
	if !amt.IsPositive() {
		return domain.Invalid("amt debe ser mayor que cero, recibido %s", amt.String())
	}
	if err := entity.ValidateAmount(*amt); err != nil {
		return domain.Invalid("amt %s: %v", amt.String(), err)
	}
	return nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	out := dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Payment.IsPaid(),
		AddDate:  inv.AddDate.Format(dto.DateLayout),
	}
	if d := inv.Payment.PaidDate(); d != nil {
		s := d.Format(dto.DateLayout)
		out.PaidDate = &s
	}
	return out
}
