// Package memory implementa los repositorios sobre un almacén en proceso.
//
// Reproduce las restricciones del esquema SQL: claves primarias, unicidad de
// companies.name e industries.industry, claves foráneas, amt > 0 y los borrados en
// cascada. Las transacciones toman el candado del almacén completo y restauran una
// copia si el callback falla.
package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

var _ usecase.TxRunner = (*Store)(nil)

// Store almacén en memoria seguro para uso concurrente.
type Store struct {
	mu   sync.Mutex
	data *tables
}

type tables struct {
	companies  map[string]entity.Company
	industries map[string]entity.Industry
	links      map[int64]entity.CompanyIndustry
	invoices   map[int64]entity.Invoice
	nextLink   int64
	nextInv    int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{data: &tables{
		companies:  map[string]entity.Company{},
		industries: map[string]entity.Industry{},
		links:      map[int64]entity.CompanyIndustry{},
		invoices:   map[int64]entity.Invoice{},
	}}
}

// Repositories devuelve repositorios que toman el candado en cada operación.
func (s *Store) Repositories() usecase.Repositories {
	return s.repos(false)
}

// Run ejecuta fn con el almacén bloqueado; si fn falla se descartan sus cambios.
func (s *Store) Run(ctx context.Context, fn func(repos usecase.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(s.repos(true)); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) repos(inTx bool) usecase.Repositories {
	a := access{s: s, inTx: inTx}
	return usecase.Repositories{
		Companies:         companyRepo{a},
		Industries:        industryRepo{a},
		CompanyIndustries: linkRepo{a},
		Invoices:          invoiceRepo{a},
	}
}

// access serializa el acceso a las tablas; dentro de Run el candado ya está tomado.
type access struct {
	s    *Store
	inTx bool
}

func (a access) with(ctx context.Context, fn func(t *tables) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !a.inTx {
		a.s.mu.Lock()
		defer a.s.mu.Unlock()
	}
	return fn(a.s.data)
}

func (t *tables) clone() *tables {
	c := &tables{
		companies:  make(map[string]entity.Company, len(t.companies)),
		industries: make(map[string]entity.Industry, len(t.industries)),
		links:      make(map[int64]entity.CompanyIndustry, len(t.links)),
		invoices:   make(map[int64]entity.Invoice, len(t.invoices)),
		nextLink:   t.nextLink,
		nextInv:    t.nextInv,
	}
	for k, v := range t.companies {
		c.companies[k] = v
	}
	for k, v := range t.industries {
		c.industries[k] = v
	}
	for k, v := range t.links {
		c.links[k] = v
	}
	for k, v := range t.invoices {
		c.invoices[k] = v
	}
	return c
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}
