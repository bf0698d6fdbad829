package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Tipos de fila del CSV de carga.
const (
	kindCompany  = "company"  // company,<nombre>,<descripción>
	kindIndustry = "industry" // industry,<código>,<etiqueta>
	kindLink     = "link"     // link,<código empresa>,<código industria>
	kindInvoice  = "invoice"  // invoice,<código empresa>,<monto>
)

type seedRow struct {
	line int
	kind string
	a, b string
	amt  decimal.Decimal
}

// decoderFor envuelve r para leer ISO-8859-1 cuando se pide; por defecto UTF-8.
func decoderFor(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf8", "utf-8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada %q (utf8 | latin1)", encoding)
	}
}

// parseRows lee el CSV completo. Las líneas vacías o que empiezan con # se ignoran.
func parseRows(r io.Reader) ([]seedRow, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []seedRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos 2 columnas", line)
		}
		row := seedRow{line: line, kind: strings.ToLower(strings.TrimSpace(rec[0])), a: strings.TrimSpace(rec[1])}
		if len(rec) > 2 {
			row.b = strings.TrimSpace(rec[2])
		}
		switch row.kind {
		case kindCompany, kindIndustry, kindLink:
		case kindInvoice:
			amt, err := decimal.NewFromString(row.b)
			if err != nil {
				return nil, fmt.Errorf("línea %d: monto inválido %q", line, row.b)
			}
			row.amt = amt
		default:
			return nil, fmt.Errorf("línea %d: tipo de fila desconocido %q", line, row.kind)
		}
		rows = append(rows, row)
	}
}
