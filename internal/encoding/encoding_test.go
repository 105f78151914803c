package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfed-mr/backoffice/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Date;Libellé;Montant\n05/01/2024;Carburant véhicule;12 500\n"

	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Libellé" with é as 0xE9.
	input := []byte{'L', 'i', 'b', 'e', 'l', 'l', 0xE9, ';', 'M', 'o', 'n', 't', 'a', 'n', 't', '\n'}

	assert.Equal(t, "Libellé;Montant\n", decode(t, input))
}

func TestNewUTF8Reader_UTF8BOMStripped(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Libellé;Montant\n")...)

	assert.Equal(t, "Libellé;Montant\n", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// UTF-16LE with BOM for "Date\n".
	input := []byte{0xFF, 0xFE, 'D', 0, 'a', 0, 't', 0, 'e', 0, '\n', 0}

	assert.Equal(t, "Date\n", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
