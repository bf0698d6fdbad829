package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	IndustryUC *usecase.IndustryUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	// Companies
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:code", companyHandler.Get)
	companies.Patch("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)
	companies.Get("/:code/industries", companyHandler.ListIndustries)
	companies.Post("/:code/industries", companyHandler.AddIndustry)
	companies.Delete("/:code/industries", companyHandler.RemoveIndustry)

	// Industries
	industries := app.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)
	industries.Get("/:code", industryHandler.Get)
	industries.Delete("/:code", industryHandler.Delete)

	// Invoices
	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Patch("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
}
