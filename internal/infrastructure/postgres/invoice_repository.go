package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, mapError("list invoices", err)
	}
	return collectInvoices(rows)
}

func (r *InvoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
	if err != nil {
		return nil, mapError("list company invoices", err)
	}
	return collectInvoices(rows)
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de TxRunner.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) get(ctx context.Context, query string, id int64) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapError("get invoice", err)
	}
	return inv, nil
}

// Create persiste la factura y asigna el ID generado.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.AddDate.IsZero() {
		invoice.AddDate = entity.DateOf(time.Now())
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO invoices (comp_code, amt, paid, add_date, paid_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, amt, add_date`,
		invoice.CompCode, invoice.Amt, invoice.Payment.IsPaid(), invoice.AddDate, invoice.Payment.PaidDate(),
	).Scan(&invoice.ID, &invoice.Amt, &invoice.AddDate)
	if err != nil {
		return mapError("insert invoice", err)
	}
	invoice.AddDate = entity.DateOf(invoice.AddDate)
	return nil
}

// Update escribe monto y estado de pago (paid y paid_date juntos) y relee el monto almacenado.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	err := r.q.QueryRow(ctx,
		`UPDATE invoices SET amt = $2, paid = $3, paid_date = $4 WHERE id = $1 RETURNING amt`,
		invoice.ID, invoice.Amt, invoice.Payment.IsPaid(), invoice.Payment.PaidDate(),
	).Scan(&invoice.Amt)
	if err != nil {
		if isNoRows(err) {
			return domain.NewNotFound("factura", strconv.FormatInt(invoice.ID, 10))
		}
		return mapError("update invoice", err)
	}
	return nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return mapError("delete invoice", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("factura", strconv.FormatInt(id, 10))
	}
	return nil
}

func collectInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, mapError("scan invoice", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv      entity.Invoice
		paid     bool
		paidDate *time.Time
	)
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &paid, &inv.AddDate, &paidDate); err != nil {
		return nil, err
	}
	payment, err := entity.RestorePayment(paid, paidDate)
	if err != nil {
		return nil, fmt.Errorf("factura %d: %w", inv.ID, err)
	}
	inv.Payment = payment
	inv.AddDate = entity.DateOf(inv.AddDate)
	return &inv, nil
}
