package entity

// Industry representa un sector económico; Code lo define quien la crea.
type Industry struct {
	Code     string
	Industry string // etiqueta única
}

// CompanyIndustry es una fila de la tabla de asociación empresa ↔ industria.
// El par (CompCode, IndCode) no es único en el almacén.
type CompanyIndustry struct {
	ID       int64
	CompCode string
	IndCode  string
}
