package dto

import "github.com/shopspring/decimal"

// Los montos salen como número JSON (100.5) y no como string ("100.5").
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout formato de fechas (sin hora) en las respuestas.
const DateLayout = "2006-01-02"

// StatusDeleted valor de StatusResponse tras un DELETE exitoso.
const StatusDeleted = "deleted"

// StatusResponse cuerpo de confirmación de borrado.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
