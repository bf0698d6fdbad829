package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository (usable con pool o tx).
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

func (r *IndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	rows, err := r.q.Query(ctx, `SELECT code, industry FROM industries ORDER BY code`)
	if err != nil {
		return nil, mapError("list industries", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.Industry])
	if err != nil {
		return nil, mapError("scan industry", err)
	}
	return list, nil
}

func (r *IndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	var ind entity.Industry
	err := r.q.QueryRow(ctx,
		`SELECT code, industry FROM industries WHERE code = $1`, code,
	).Scan(&ind.Code, &ind.Industry)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapError("get industry", err)
	}
	return &ind, nil
}

func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO industries (code, industry) VALUES ($1, $2)`,
		industry.Code, industry.Industry,
	)
	if err != nil {
		return mapError("insert industry", err)
	}
	return nil
}

// Delete elimina una industria (asociaciones por ON DELETE CASCADE).
func (r *IndustryRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM industries WHERE code = $1`, code)
	if err != nil {
		return mapError("delete industry", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("industria", code)
	}
	return nil
}

// LabelsByCompany devuelve las etiquetas vía la tabla de asociación, en orden de alta.
func (r *IndustryRepo) LabelsByCompany(ctx context.Context, compCode string) ([]string, error) {
	const query = `
		SELECT i.industry
		  FROM companies_industries ci
		  JOIN industries i ON i.code = ci.ind_code
		 WHERE ci.comp_code = $1
		 ORDER BY ci.id`
	rows, err := r.q.Query(ctx, query, compCode)
	if err != nil {
		return nil, mapError("list company industries", err)
	}
	labels, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError("scan industry label", err)
	}
	return labels, nil
}
