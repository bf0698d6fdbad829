package dto

// CreateCompanyRequest entrada para crear una empresa. El código se deriva del nombre.
type CreateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
// Ambos campos se escriben siempre: una descripción ausente queda en null.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetailResponse empresa con sus facturas y las etiquetas de sus industrias.
type CompanyDetailResponse struct {
	CompanyResponse
	Invoices   []InvoiceResponse `json:"invoices"`
	Industries []string          `json:"industries"`
}

// CompanyEnvelope sobre {company: ...}.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope sobre {company: ...} para GET /companies/:code.
type CompanyDetailEnvelope struct {
	Company CompanyDetailResponse `json:"company"`
}

// CompanyListResponse sobre {companies: [...]}.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// CompanyIndustryRequest entrada para asociar o desasociar una industria.
type CompanyIndustryRequest struct {
	IndCode string `json:"ind_code" validate:"required"`
}

// CompanyIndustryResponse fila de la tabla de asociación.
type CompanyIndustryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
	IndCode  string `json:"ind_code"`
}

// CompanyIndustryEnvelope sobre {company_industry: ...}.
type CompanyIndustryEnvelope struct {
	CompanyIndustry CompanyIndustryResponse `json:"company_industry"`
}

// CompanyIndustryListResponse sobre {companies_industries: [...]}.
type CompanyIndustryListResponse struct {
	CompaniesIndustries []CompanyIndustryResponse `json:"companies_industries"`
}
