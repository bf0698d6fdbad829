package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"100":       "100.00",
		"25000":     "25,000.00",
		"1000000.5": "1,000,000.50",
		"-1234.56":  "-1,234.56",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	desc := "Maker of OSX."
	company := &entity.Company{Code: "apple", Name: "Apple", Description: &desc}
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	unpaid := &entity.Invoice{ID: 1, CompCode: "apple", Amt: decimal.NewFromInt(100), Payment: entity.Unpaid(), AddDate: day}
	paid := &entity.Invoice{ID: 2, CompCode: "apple", Amt: decimal.RequireFromString("12.5"), Payment: entity.PaidOn(day), AddDate: day}

	g := NewMarotoPDFGenerator()
	for _, inv := range []*entity.Invoice{unpaid, paid} {
		out, err := g.GenerateInvoicePDF(context.Background(), inv, company)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	}
}

func TestGenerateInvoicePDF_SinEmpresa(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), &entity.Invoice{}, nil)
	assert.Error(t, err)
}
