package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Repositories agrupa los puertos de persistencia atados a un mismo almacén (pool o transacción).
type Repositories struct {
	Companies         repository.CompanyRepository
	Industries        repository.IndustryRepository
	CompanyIndustries repository.CompanyIndustryRepository
	Invoices          repository.InvoiceRepository
}

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback; si no, commit. Cubre las operaciones de varios
// pasos (verificar existencia y luego mutar, leer padre y luego hijos).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}
