package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.CompanyIndustryRepository = (*CompanyIndustryRepo)(nil)

// CompanyIndustryRepo implementación de la tabla de asociación companies_industries.
type CompanyIndustryRepo struct {
	q Querier
}

// NewCompanyIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyIndustryRepository(q Querier) *CompanyIndustryRepo {
	return &CompanyIndustryRepo{q: q}
}

func (r *CompanyIndustryRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.CompanyIndustry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, comp_code, ind_code FROM companies_industries WHERE comp_code = $1 ORDER BY id`, compCode)
	if err != nil {
		return nil, mapError("list companies_industries", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.CompanyIndustry])
	if err != nil {
		return nil, mapError("scan company industry", err)
	}
	return list, nil
}

// Create inserta la asociación sin verificar antes las claves: lo hacen las FK.
func (r *CompanyIndustryRepo) Create(ctx context.Context, link *entity.CompanyIndustry) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO companies_industries (comp_code, ind_code) VALUES ($1, $2) RETURNING id`,
		link.CompCode, link.IndCode,
	).Scan(&link.ID)
	if err != nil {
		return mapError("insert company industry", err)
	}
	return nil
}

func (r *CompanyIndustryRepo) FindByPair(ctx context.Context, compCode, indCode string) (*entity.CompanyIndustry, error) {
	var l entity.CompanyIndustry
	err := r.q.QueryRow(ctx, `
		SELECT id, comp_code, ind_code FROM companies_industries
		 WHERE comp_code = $1 AND ind_code = $2
		 ORDER BY id LIMIT 1`, compCode, indCode,
	).Scan(&l.ID, &l.CompCode, &l.IndCode)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapError("find company industry", err)
	}
	return &l, nil
}

func (r *CompanyIndustryRepo) DeleteByID(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies_industries WHERE id = $1`, id)
	if err != nil {
		return mapError("delete company industry", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("asociación", strconv.FormatInt(id, 10))
	}
	return nil
}
