package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyIndustryRepository define el puerto para la tabla de asociación companies_industries.
type CompanyIndustryRepository interface {
	ListByCompany(ctx context.Context, compCode string) ([]*entity.CompanyIndustry, error)
	// Create asigna el ID; domain.ErrInvalidInput si la empresa o la industria no existen.
	Create(ctx context.Context, link *entity.CompanyIndustry) error
	// FindByPair devuelve la primera asociación del par o (nil, nil).
	FindByPair(ctx context.Context, compCode, indCode string) (*entity.CompanyIndustry, error)
	DeleteByID(ctx context.Context, id int64) error
}
