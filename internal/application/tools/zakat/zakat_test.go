package zakat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officetools/internal/shared/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		in           Input
		wantEligible bool
		wantNisab    string
		wantNet      string
		wantDue      string
	}{
		{
			name:         "silver basis above nisab",
			in:           Input{Cash: d("1000"), Liabilities: d("200"), SilverPricePerGram: d("1.00")},
			wantEligible: true,
			wantNisab:    "595",
			wantNet:      "800",
			wantDue:      "20",
		},
		{
			name:         "exactly at nisab",
			in:           Input{Cash: d("595"), SilverPricePerGram: d("1")},
			wantEligible: true,
			wantNisab:    "595",
			wantNet:      "595",
			wantDue:      "14.88",
		},
		{
			name:         "gold basis below nisab",
			in:           Input{Cash: d("1000"), GoldPricePerGram: d("70"), NisabBasis: "GOLD"},
			wantEligible: false,
			wantNisab:    "5950",
			wantNet:      "1000",
			wantDue:      "0",
		},
		{
			name: "gold holdings and other assets",
			in: Input{
				Cash: d("500"), GoldGrams: d("100"), GoldPricePerGram: d("70"),
				Investments: d("250.50"), BusinessAssets: d("100"), Receivables: d("49.50"),
				Liabilities: d("400"), NisabBasis: "gold",
			},
			wantEligible: true,
			wantNisab:    "5950",
			wantNet:      "7500",
			wantDue:      "187.5",
		},
		{
			name:         "liabilities exceed assets",
			in:           Input{Cash: d("100"), Liabilities: d("300"), SilverPricePerGram: d("0.8")},
			wantEligible: false,
			wantNisab:    "476",
			wantNet:      "-200",
			wantDue:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEligible, got.Eligible)
			assert.True(t, d(tt.wantNisab).Equal(got.NisabValue), "nisab %s", got.NisabValue)
			assert.True(t, d(tt.wantNet).Equal(got.NetWealth), "net %s", got.NetWealth)
			assert.True(t, d(tt.wantDue).Equal(got.ZakatDue), "due %s", got.ZakatDue)
		})
	}
}

func TestCalculate_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{name: "unknown basis", in: Input{NisabBasis: "platinum", SilverPricePerGram: d("1")}},
		{name: "negative cash", in: Input{Cash: d("-1"), SilverPricePerGram: d("1")}},
		{name: "missing silver price", in: Input{Cash: d("10")}},
		{name: "missing gold price", in: Input{Cash: d("10"), NisabBasis: BasisGold}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("cash", "")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = ParseAmount("cash", " 12.345 ")
	require.NoError(t, err)
	assert.True(t, d("12.345").Equal(v))

	_, err = ParseAmount("cash", "twelve")
	assert.True(t, errors.IsValidationError(err))
}
