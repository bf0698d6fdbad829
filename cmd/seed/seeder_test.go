package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/infrastructure/memory"
)

const sampleCSV = `company,Apple Computer,Maker of OSX.
industry,tech,Technology
link,apple-computer,tech
invoice,apple-computer,100.00
`

func TestSeeder_SegundaCorrida(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	s := seeder{
		companies:  usecase.NewCompanyUseCase(repos, store),
		industries: usecase.NewIndustryUseCase(repos, store),
		invoices:   usecase.NewInvoiceUseCase(repos, store),
	}
	rows, err := parseRows(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	for _, row := range rows {
		require.NoError(t, s.apply(ctx, row), row.kind)
	}

	// company, industry y link ya existen; invoice se vuelve a insertar
	for _, row := range rows {
		err := s.apply(ctx, row)
		if row.kind == kindInvoice {
			assert.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict, row.kind)
	}

	links, err := repos.CompanyIndustries.ListByCompany(ctx, "apple-computer")
	require.NoError(t, err)
	assert.Len(t, links, 1)

	invoices, err := repos.Invoices.ListByCompany(ctx, "apple-computer")
	require.NoError(t, err)
	assert.Len(t, invoices, 2)
}
