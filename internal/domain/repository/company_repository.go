package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	// GetByCode devuelve (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// Create devuelve domain.ErrConflict si el código o el nombre ya existen.
	Create(ctx context.Context, company *entity.Company) error
	// Update reescribe nombre y descripción; domain.ErrNotFound si no hay fila.
	Update(ctx context.Context, company *entity.Company) error
	// Delete elimina la empresa (y en cascada sus facturas y asociaciones); domain.ErrNotFound si no hay fila.
	Delete(ctx context.Context, code string) error
}
