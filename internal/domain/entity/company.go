package entity

// Company representa una empresa; Code es la clave primaria derivada del nombre (slug).
type Company struct {
	Code        string
	Name        string
	Description *string // nil = sin descripción (NULL)
}

// CompanyDetail es la vista de una empresa con sus facturas y las etiquetas de sus industrias.
type CompanyDetail struct {
	Company
	Invoices   []*Invoice
	Industries []string
}
