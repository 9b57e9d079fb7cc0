package format

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// plain swaps the non-breaking separator for a regular space to keep
// expectations readable.
func plain(s string) string { return strings.ReplaceAll(s, nbsp, " ") }

func TestMontant(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500", "500,00"},
		{"0", "0,00"},
		{"0.5", "0,50"},
		{"1234.56", "1 234,56"},
		{"1234567.891", "1 234 567,89"},
		{"-12.3", "-12,30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, plain(Montant(decimal.RequireFromString(tt.in))), "Montant(%s)", tt.in)
	}
}

func TestEurosAndPlaceholders(t *testing.T) {
	assert.Equal(t, "10 000,00 €", plain(Euros(decimal.NewFromInt(10000))))
	assert.Equal(t, Placeholder, EurosOu(decimal.NullDecimal{}))
	assert.Equal(t, "66,67 %", plain(Pourcentage(decimal.RequireFromString("66.6666"))))
}

func TestDateLongue(t *testing.T) {
	assert.Equal(t, "1er mars 2026", DateLongue(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "15 octobre 2026", DateLongue(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Placeholder, DateLongueOu(nil))
	assert.Equal(t, "9h05", Heure(time.Date(2026, 1, 1, 9, 5, 0, 0, time.UTC)))
}

func TestAgreement(t *testing.T) {
	assert.Equal(t, "née", Ne("Mme"))
	assert.Equal(t, "né", Ne("M."))
	assert.Equal(t, "Le soussigné", Soussigne([]string{"M."}))
	assert.Equal(t, "La soussignée", Soussigne([]string{"Mme"}))
	assert.Equal(t, "Les soussignés", Soussigne([]string{"Mme", "M."}))
	assert.Equal(t, "Les soussignées", Soussigne([]string{"Mme", "Madame"}))
}

func TestAdresse(t *testing.T) {
	assert.Equal(t, "12 rue de la Paix, 75002 Paris", Adresse("12 rue de la Paix", " ", "75002 Paris"))
	assert.Equal(t, Placeholder, Adresse("", "  "))
	assert.Equal(t, Placeholder, OrPlaceholder(" "))
}
