package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry.
type IndustryRepository interface {
	List(ctx context.Context) ([]*entity.Industry, error)
	GetByCode(ctx context.Context, code string) (*entity.Industry, error)
	Create(ctx context.Context, industry *entity.Industry) error
	Delete(ctx context.Context, code string) error
	// LabelsByCompany devuelve las etiquetas de las industrias asociadas a la empresa.
	LabelsByCompany(ctx context.Context, compCode string) ([]string, error)
}
