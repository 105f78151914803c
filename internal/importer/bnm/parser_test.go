package bnm

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ReleveFormat(t *testing.T) {
	input := strings.Join([]string{
		"Relevé de compte;;;;",
		"Date opération;Libellé;Référence;Débit;Crédit",
		"05/01/2024;Carburant véhicule;J-2024-001;12 500;",
		"10/01/2024;Virement reçu;V-0042;;50 000",
		"20/01/2024;Hébergement mission;J-2024-002;8 000;",
		";;;;",
	}, "\n")

	params, err := New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "Carburant véhicule", params[0].Name)
	assert.Equal(t, int64(12500), params[0].Amount)
	assert.Equal(t, "J-2024-001", params[0].ReceiptRef)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), params[0].Date)

	assert.Equal(t, "Hébergement mission", params[1].Name)
	assert.Equal(t, int64(8000), params[1].Amount)
}

func TestParse_SimpleFormat(t *testing.T) {
	input := strings.Join([]string{
		"Date;Libellé;Pièce;Montant",
		"03/02/2024;Fournitures;J-100;-1 250,00",
		"04/02/2024;Remboursement;R-7;300,00",
	}, "\n")

	params, err := New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)

	// Only the debit becomes an expense, with its sign flipped.
	assert.Equal(t, "Fournitures", params[0].Name)
	assert.Equal(t, int64(1250), params[0].Amount)
}

func TestParse_MissingReceiptFails(t *testing.T) {
	input := strings.Join([]string{
		"Date opération;Libellé;Référence;Débit;Crédit",
		"05/01/2024;Carburant;;12 500;",
	}, "\n")

	_, err := New().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receipt")
}

func TestParse_UnknownFormat(t *testing.T) {
	input := "foo;bar\n1;2\n"

	_, err := New().Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseFrenchAmount(t *testing.T) {
	type testCase struct {
		in      string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{in: "12 500", want: 12500},
		{in: "12 345,50", want: 12346},
		{in: "1.250", want: 1250},
		{in: "-588,74", want: -589},
		{in: "0", want: 0},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFrenchAmount(tt.in)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
