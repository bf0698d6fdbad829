package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	in := `# datos de ejemplo
company,Apple Computer,Maker of OSX.
industry, tech, Technology
link,apple-computer,tech
invoice,apple-computer,100.50
`
	rows, err := parseRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, kindCompany, rows[0].kind)
	assert.Equal(t, "Apple Computer", rows[0].a)
	assert.Equal(t, "Maker of OSX.", rows[0].b)
	assert.Equal(t, 2, rows[0].line)

	assert.Equal(t, "tech", rows[1].a)
	assert.Equal(t, "Technology", rows[1].b)

	assert.Equal(t, kindInvoice, rows[3].kind)
	assert.Equal(t, "100.5", rows[3].amt.String())
}

func TestParseRows_Errores(t *testing.T) {
	_, err := parseRows(strings.NewReader("invoice,apple,mucho\n"))
	assert.ErrorContains(t, err, "monto inválido")

	_, err = parseRows(strings.NewReader("vendor,acme,x\n"))
	assert.ErrorContains(t, err, "desconocido")

	_, err = parseRows(strings.NewReader("company\n"))
	assert.Error(t, err)
}

func TestDecoderFor_Latin1(t *testing.T) {
	// "Café" en ISO-8859-1: é = 0xE9
	raw := []byte("company,Caf\xe9 Ol\xe9,\n")
	r, err := decoderFor(bytes.NewReader(raw), "latin1")
	require.NoError(t, err)

	rows, err := parseRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café Olé", rows[0].a)

	_, err = decoderFor(bytes.NewReader(raw), "ebcdic")
	assert.Error(t, err)
}
