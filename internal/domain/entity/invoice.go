package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a una empresa.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Payment  Payment
	AddDate  time.Time
}

// Límites de numeric(12,2): dos decimales y diez dígitos enteros.
const (
	AmountScale         = 2
	AmountIntegerDigits = 10
)

var (
	ErrAmountScale    = errors.New("admite como máximo 2 decimales")
	ErrAmountOverflow = errors.New("admite como máximo 10 dígitos enteros")

	amountLimit = decimal.New(1, AmountIntegerDigits)
)

// ValidateAmount comprueba que amt se almacena sin redondeo ni desbordamiento.
func ValidateAmount(amt decimal.Decimal) error {
	if !amt.Equal(amt.Round(AmountScale)) {
		return ErrAmountScale
	}
	if amt.Abs().GreaterThanOrEqual(amountLimit) {
		return ErrAmountOverflow
	}
	return nil
}

// Payment es el estado de pago de una factura: pendiente, o pagada en una fecha.
// Los campos no se exportan para que pagada ⇔ fecha de pago no nula no se pueda romper.
type Payment struct {
	paid     bool
	paidDate time.Time
}

// Unpaid devuelve el estado pendiente (sin fecha de pago).
func Unpaid() Payment { return Payment{} }

// PaidOn devuelve el estado pagado en la fecha (día calendario) de date.
func PaidOn(date time.Time) Payment {
	return Payment{paid: true, paidDate: DateOf(date)}
}

// ErrInconsistentPayment se devuelve al restaurar una fila con paid y paid_date incoherentes.
var ErrInconsistentPayment = errors.New("estado de pago inconsistente")

// RestorePayment reconstruye el estado leído del almacén.
func RestorePayment(paid bool, paidDate *time.Time) (Payment, error) {
	switch {
	case paid && paidDate != nil:
		return PaidOn(*paidDate), nil
	case !paid && paidDate == nil:
		return Unpaid(), nil
	default:
		return Payment{}, ErrInconsistentPayment
	}
}

// IsPaid informa si la factura está pagada.
func (p Payment) IsPaid() bool { return p.paid }

// PaidDate devuelve la fecha de pago, o nil si está pendiente.
func (p Payment) PaidDate() *time.Time {
	if !p.paid {
		return nil
	}
	d := p.paidDate
	return &d
}

// PaymentTransition es el cambio de estado de pago que pide una actualización.
type PaymentTransition int

const (
	TransitionAmountOnly PaymentTransition = iota // solo monto; el pago no cambia
	TransitionMarkPaid                            // pagada hoy (refresca la fecha aunque ya lo estuviera)
	TransitionMarkUnpaid                          // pendiente; se borra la fecha
)

// TransitionFor elige la transición según el campo "paid" del request (nil = ausente).
func TransitionFor(paid *bool) PaymentTransition {
	switch {
	case paid == nil:
		return TransitionAmountOnly
	case *paid:
		return TransitionMarkPaid
	default:
		return TransitionMarkUnpaid
	}
}

func (t PaymentTransition) String() string {
	switch t {
	case TransitionMarkPaid:
		return "mark_paid"
	case TransitionMarkUnpaid:
		return "mark_unpaid"
	default:
		return "amount_only"
	}
}

// Apply fija el monto y aplica la transición de pago en un solo paso.
func (inv *Invoice) Apply(t PaymentTransition, amt decimal.Decimal, today time.Time) {
	inv.Amt = amt
	switch t {
	case TransitionMarkPaid:
		inv.Payment = PaidOn(today)
	case TransitionMarkUnpaid:
		inv.Payment = Unpaid()
	}
}

// DateOf trunca t a su día calendario (medianoche UTC).
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
