package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/slug"
)

// CompanyUseCase aplica reglas de negocio para empresas y sus asociaciones con industrias.
type CompanyUseCase struct {
	repos Repositories
	tx    TxRunner
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repos Repositories, tx TxRunner) *CompanyUseCase {
	return &CompanyUseCase{repos: repos, tx: tx}
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repos.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Create crea una empresa con código = slug(nombre). Devuelve domain.ErrConflict si el
// código o el nombre ya existen (lo decide la restricción del almacén, sin pre-chequeo).
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name es requerido")
	}
	code := slug.Make(in.Name)
	if code == "" {
		return nil, domain.Invalid("el nombre %q no produce un código válido", in.Name)
	}
	company := &entity.Company{Code: code, Name: in.Name, Description: in.Description}
	if err := uc.repos.Companies.Create(ctx, company); err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// Get obtiene la empresa con sus facturas y etiquetas de industria, en una sola transacción.
// Las consultas hijas solo se ejecutan si la empresa existe.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	var out *dto.CompanyDetailResponse
	err := uc.tx.Run(ctx, func(r Repositories) error {
		company, err := r.Companies.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.NewNotFound("empresa", code)
		}
		invoices, err := r.Invoices.ListByCompany(ctx, code)
		if err != nil {
			return err
		}
		labels, err := r.Industries.LabelsByCompany(ctx, code)
		if err != nil {
			return err
		}
		out = toCompanyDetailResponse(&entity.CompanyDetail{
			Company:    *company,
			Invoices:   invoices,
			Industries: labels,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reescribe nombre y descripción (sin omitir campos ausentes).
// La existencia se verifica antes que el cuerpo: un código inexistente siempre es NotFound.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	var out dto.CompanyResponse
	err := uc.tx.Run(ctx, func(r Repositories) error {
		company, err := r.Companies.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.NewNotFound("empresa", code)
		}
		if strings.TrimSpace(in.Name) == "" {
			return domain.Invalid("name es requerido")
		}
		company.Name = in.Name
		company.Description = in.Description
		if err := r.Companies.Update(ctx, company); err != nil {
			return err
		}
		out = toCompanyResponse(company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina la empresa; sus facturas y asociaciones caen en cascada.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	return uc.tx.Run(ctx, func(r Repositories) error {
		company, err := r.Companies.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.NewNotFound("empresa", code)
		}
		return r.Companies.Delete(ctx, code)
	})
}

// ListIndustries devuelve las filas de asociación de la empresa (vacío si no tiene o no existe).
func (uc *CompanyUseCase) ListIndustries(ctx context.Context, code string) (*dto.CompanyIndustryListResponse, error) {
	links, err := uc.repos.CompanyIndustries.ListByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyIndustryResponse, 0, len(links))
	for _, l := range links {
		items = append(items, toCompanyIndustryResponse(l))
	}
	return &dto.CompanyIndustryListResponse{CompaniesIndustries: items}, nil
}

// AddIndustry asocia la industria a la empresa. Las claves foráneas las valida el almacén
// (domain.ErrInvalidInput si alguna no existe).
func (uc *CompanyUseCase) AddIndustry(ctx context.Context, code string, in dto.CompanyIndustryRequest) (*dto.CompanyIndustryResponse, error) {
	if in.IndCode == "" {
		return nil, domain.Invalid("ind_code es requerido")
	}
	link := &entity.CompanyIndustry{CompCode: code, IndCode: in.IndCode}
	if err := uc.repos.CompanyIndustries.Create(ctx, link); err != nil {
		return nil, err
	}
	out := toCompanyIndustryResponse(link)
	return &out, nil
}

// RemoveIndustry busca la asociación por (empresa, industria) y la elimina por su ID.
func (uc *CompanyUseCase) RemoveIndustry(ctx context.Context, code string, in dto.CompanyIndustryRequest) error {
	if in.IndCode == "" {
		return domain.Invalid("ind_code es requerido")
	}
	return uc.tx.Run(ctx, func(r Repositories) error {
		link, err := r.CompanyIndustries.FindByPair(ctx, code, in.IndCode)
		if err != nil {
			return err
		}
		if link == nil {
			return domain.NewNotFound("asociación", code+"/"+in.IndCode)
		}
		return r.CompanyIndustries.DeleteByID(ctx, link.ID)
	})
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toCompanyDetailResponse(d *entity.CompanyDetail) *dto.CompanyDetailResponse {
	invoices := make([]dto.InvoiceResponse, 0, len(d.Invoices))
	for _, inv := range d.Invoices {
		invoices = append(invoices, toInvoiceResponse(inv))
	}
	industries := d.Industries
	if industries == nil {
		industries = []string{}
	}
	return &dto.CompanyDetailResponse{
		CompanyResponse: toCompanyResponse(&d.Company),
		Invoices:        invoices,
		Industries:      industries,
	}
}

func toCompanyIndustryResponse(l *entity.CompanyIndustry) dto.CompanyIndustryResponse {
	return dto.CompanyIndustryResponse{ID: l.ID, CompCode: l.CompCode, IndCode: l.IndCode}
}
