package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error)
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error)
	// Create asigna ID y add_date; la factura nace pendiente de pago.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update escribe monto y estado de pago; domain.ErrNotFound si no hay fila.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id int64) error
}
