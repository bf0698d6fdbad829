package dto

// CreateIndustryRequest entrada para crear una industria (el código lo define el cliente).
type CreateIndustryRequest struct {
	Code     string `json:"code" validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

// IndustryResponse salida de una industria.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryEnvelope sobre {industry: ...}.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryListResponse sobre {industries: [...]}.
type IndustryListResponse struct {
	Industries []IndustryResponse `json:"industries"`
}
