// seed carga empresas, industrias, asociaciones y facturas desde un CSV.
//
// Uso: go run ./cmd/seed datos.csv [latin1]
//
// Formato (una fila por registro, # para comentarios):
//
//	company,Apple Computer,Maker of OSX.
//	industry,tech,Technology
//	link,apple-computer,tech
//	invoice,apple-computer,100.00
//
// Empresas, industrias y asociaciones que ya existen se omiten. Las facturas no tienen
// clave natural: cada corrida las vuelve a insertar.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: seed <archivo.csv> [utf8|latin1]")
		os.Exit(2)
	}
	encoding := ""
	if len(os.Args) > 2 {
		encoding = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	r, err := decoderFor(f, encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}
	rows, err := parseRows(r)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := postgres.NewRepositories(pool)
	tx := postgres.NewTxRunner(pool)
	s := seeder{
		companies:  usecase.NewCompanyUseCase(repos, tx),
		industries: usecase.NewIndustryUseCase(repos, tx),
		invoices:   usecase.NewInvoiceUseCase(repos, tx),
	}

	created, skipped := 0, 0
	for _, row := range rows {
		err := s.apply(ctx, row)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrConflict):
			skipped++
			log.Debug().Int("line", row.line).Str("kind", row.kind).Msg("ya existe, se omite")
		default:
			log.Fatal().Err(err).Int("line", row.line).Str("kind", row.kind).Msg("cargar fila")
		}
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("carga finalizada")
}

type seeder struct {
	companies  *usecase.CompanyUseCase
	industries *usecase.IndustryUseCase
	invoices   *usecase.InvoiceUseCase
}

func (s seeder) apply(ctx context.Context, row seedRow) error {
	var err error
	switch row.kind {
	case kindCompany:
		var desc *string
		if row.b != "" {
			desc = &row.b
		}
		_, err = s.companies.Create(ctx, dto.CreateCompanyRequest{Name: row.a, Description: desc})
	case kindIndustry:
		_, err = s.industries.Create(ctx, dto.CreateIndustryRequest{Code: row.a, Industry: row.b})
	case kindLink:
		var links *dto.CompanyIndustryListResponse
		links, err = s.companies.ListIndustries(ctx, row.a)
		if err != nil {
			return err
		}
		for _, l := range links.CompaniesIndustries {
			if l.IndCode == row.b {
				return fmt.Errorf("asociación %s/%s: %w", row.a, row.b, domain.ErrConflict)
			}
		}
		_, err = s.companies.AddIndustry(ctx, row.a, dto.CompanyIndustryRequest{IndCode: row.b})
	case kindInvoice:
		amt := row.amt
		_, err = s.invoices.Create(ctx, dto.CreateInvoiceRequest{CompCode: row.a, Amt: &amt})
	}
	return err
}
