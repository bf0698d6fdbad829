package memory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository         = companyRepo{}
	_ repository.IndustryRepository        = industryRepo{}
	_ repository.CompanyIndustryRepository = linkRepo{}
	_ repository.InvoiceRepository         = invoiceRepo{}
)

// ── companies ─────────────────────────────────────────────────────────────────

type companyRepo struct{ access }

func (r companyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	var list []*entity.Company
	err := r.with(ctx, func(t *tables) error {
		for _, code := range sortedKeys(t.companies) {
			c := t.companies[code]
			list = append(list, &c)
		}
		return nil
	})
	return list, err
}

func (r companyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	var out *entity.Company
	err := r.with(ctx, func(t *tables) error {
		if c, ok := t.companies[code]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r companyRepo) Create(ctx context.Context, company *entity.Company) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.companies[company.Code]; ok {
			return fmt.Errorf("insert company: %w (companies_pkey)", domain.ErrConflict)
		}
		if nameTaken(t, company.Name, "") {
			return fmt.Errorf("insert company: %w (companies_name_key)", domain.ErrConflict)
		}
		t.companies[company.Code] = *company
		return nil
	})
}

func (r companyRepo) Update(ctx context.Context, company *entity.Company) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.companies[company.Code]; !ok {
			return domain.NewNotFound("empresa", company.Code)
		}
		if nameTaken(t, company.Name, company.Code) {
			return fmt.Errorf("update company: %w (companies_name_key)", domain.ErrConflict)
		}
		t.companies[company.Code] = *company
		return nil
	})
}

// Delete elimina la empresa y en cascada sus facturas y asociaciones.
func (r companyRepo) Delete(ctx context.Context, code string) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.companies[code]; !ok {
			return domain.NewNotFound("empresa", code)
		}
		delete(t.companies, code)
		for id, inv := range t.invoices {
			if inv.CompCode == code {
				delete(t.invoices, id)
			}
		}
		for id, l := range t.links {
			if l.CompCode == code {
				delete(t.links, id)
			}
		}
		return nil
	})
}

func nameTaken(t *tables, name, exceptCode string) bool {
	for code, c := range t.companies {
		if c.Name == name && code != exceptCode {
			return true
		}
	}
	return false
}

// ── industries ────────────────────────────────────────────────────────────────

type industryRepo struct{ access }

func (r industryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	var list []*entity.Industry
	err := r.with(ctx, func(t *tables) error {
		for _, code := range sortedKeys(t.industries) {
			ind := t.industries[code]
			list = append(list, &ind)
		}
		return nil
	})
	return list, err
}

func (r industryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	var out *entity.Industry
	err := r.with(ctx, func(t *tables) error {
		if ind, ok := t.industries[code]; ok {
			out = &ind
		}
		return nil
	})
	return out, err
}

func (r industryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.industries[industry.Code]; ok {
			return fmt.Errorf("insert industry: %w (industries_pkey)", domain.ErrConflict)
		}
		for _, ind := range t.industries {
			if ind.Industry == industry.Industry {
				return fmt.Errorf("insert industry: %w (industries_industry_key)", domain.ErrConflict)
			}
		}
		t.industries[industry.Code] = *industry
		return nil
	})
}

// Delete elimina la industria y en cascada sus asociaciones.
func (r industryRepo) Delete(ctx context.Context, code string) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.industries[code]; !ok {
			return domain.NewNotFound("industria", code)
		}
		delete(t.industries, code)
		for id, l := range t.links {
			if l.IndCode == code {
				delete(t.links, id)
			}
		}
		return nil
	})
}

func (r industryRepo) LabelsByCompany(ctx context.Context, compCode string) ([]string, error) {
	var labels []string
	err := r.with(ctx, func(t *tables) error {
		for _, id := range sortedKeys(t.links) {
			l := t.links[id]
			if l.CompCode != compCode {
				continue
			}
			if ind, ok := t.industries[l.IndCode]; ok {
				labels = append(labels, ind.Industry)
			}
		}
		return nil
	})
	return labels, err
}

// ── companies_industries ──────────────────────────────────────────────────────

type linkRepo struct{ access }

func (r linkRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.CompanyIndustry, error) {
	var list []*entity.CompanyIndustry
	err := r.with(ctx, func(t *tables) error {
		for _, id := range sortedKeys(t.links) {
			if l := t.links[id]; l.CompCode == compCode {
				list = append(list, &l)
			}
		}
		return nil
	})
	return list, err
}

func (r linkRepo) Create(ctx context.Context, link *entity.CompanyIndustry) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.companies[link.CompCode]; !ok {
			return fmt.Errorf("insert company industry: %w: no existe la empresa '%s'", domain.ErrInvalidInput, link.CompCode)
		}
		if _, ok := t.industries[link.IndCode]; !ok {
			return fmt.Errorf("insert company industry: %w: no existe la industria '%s'", domain.ErrInvalidInput, link.IndCode)
		}
		t.nextLink++
		link.ID = t.nextLink
		t.links[link.ID] = *link
		return nil
	})
}

func (r linkRepo) FindByPair(ctx context.Context, compCode, indCode string) (*entity.CompanyIndustry, error) {
	var out *entity.CompanyIndustry
	err := r.with(ctx, func(t *tables) error {
		for _, id := range sortedKeys(t.links) {
			if l := t.links[id]; l.CompCode == compCode && l.IndCode == indCode {
				out = &l
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r linkRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.links[id]; !ok {
			return domain.NewNotFound("asociación", strconv.FormatInt(id, 10))
		}
		delete(t.links, id)
		return nil
	})
}

// ── invoices ──────────────────────────────────────────────────────────────────

type invoiceRepo struct{ access }

func (r invoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.filter(ctx, func(entity.Invoice) bool { return true })
}

func (r invoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	return r.filter(ctx, func(inv entity.Invoice) bool { return inv.CompCode == compCode })
}

func (r invoiceRepo) filter(ctx context.Context, keep func(entity.Invoice) bool) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	err := r.with(ctx, func(t *tables) error {
		for _, id := range sortedKeys(t.invoices) {
			if inv := t.invoices[id]; keep(inv) {
				list = append(list, &inv)
			}
		}
		return nil
	})
	return list, err
}

func (r invoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	var out *entity.Invoice
	err := r.with(ctx, func(t *tables) error {
		if inv, ok := t.invoices[id]; ok {
			out = &inv
		}
		return nil
	})
	return out, err
}

// GetByIDForUpdate equivale a GetByID: dentro de Run el almacén entero ya está bloqueado.
func (r invoiceRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r invoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.companies[invoice.CompCode]; !ok {
			return fmt.Errorf("insert invoice: %w: no existe la empresa '%s'", domain.ErrInvalidInput, invoice.CompCode)
		}
		amt, err := storedAmount(invoice.Amt)
		if err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}
		invoice.Amt = amt
		if invoice.AddDate.IsZero() {
			invoice.AddDate = entity.DateOf(time.Now())
		}
		t.nextInv++
		invoice.ID = t.nextInv
		t.invoices[invoice.ID] = *invoice
		return nil
	})
}

func (r invoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.with(ctx, func(t *tables) error {
		current, ok := t.invoices[invoice.ID]
		if !ok {
			return domain.NewNotFound("factura", strconv.FormatInt(invoice.ID, 10))
		}
		amt, err := storedAmount(invoice.Amt)
		if err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		invoice.Amt = amt
		current.Amt = amt
		current.Payment = invoice.Payment
		t.invoices[invoice.ID] = current
		return nil
	})
}

// storedAmount aplica numeric(12,2) y luego invoices_amt_check, como el esquema.
func storedAmount(amt decimal.Decimal) (decimal.Decimal, error) {
	rounded := amt.Round(entity.AmountScale)
	if err := entity.ValidateAmount(rounded); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: numeric field overflow", domain.ErrInvalidInput)
	}
	if !rounded.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: invoices_amt_check", domain.ErrInvalidInput)
	}
	return rounded, nil
}

func (r invoiceRepo) Delete(ctx context.Context, id int64) error {
	return r.with(ctx, func(t *tables) error {
		if _, ok := t.invoices[id]; !ok {
			return domain.NewNotFound("factura", strconv.FormatInt(id, 10))
		}
		delete(t.invoices, id)
		return nil
	})
}
