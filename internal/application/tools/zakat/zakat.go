// Package zakat computes zakat due on wealth against the gold or silver
// nisab.
package zakat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"officetools/internal/shared/errors"
)

const (
	BasisGold   = "gold"
	BasisSilver = "silver"
)

var (
	// NisabGoldGrams and NisabSilverGrams are the classical thresholds.
	NisabGoldGrams   = decimal.NewFromInt(85)
	NisabSilverGrams = decimal.NewFromInt(595)
	// Rate is 2.5%.
	Rate = decimal.RequireFromString("0.025")
)

// Input amounts share one currency; weights are in grams.
type Input struct {
	Cash               decimal.Decimal
	GoldGrams          decimal.Decimal
	SilverGrams        decimal.Decimal
	GoldPricePerGram   decimal.Decimal
	SilverPricePerGram decimal.Decimal
	Investments        decimal.Decimal
	BusinessAssets     decimal.Decimal
	Receivables        decimal.Decimal
	Liabilities        decimal.Decimal
	NisabBasis         string
}

type Result struct {
	GoldValue   decimal.Decimal `json:"gold_value"`
	SilverValue decimal.Decimal `json:"silver_value"`
	TotalAssets decimal.Decimal `json:"total_assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWealth   decimal.Decimal `json:"net_wealth"`
	NisabBasis  string          `json:"nisab_basis"`
	NisabValue  decimal.Decimal `json:"nisab_value"`
	Eligible    bool            `json:"eligible"`
	ZakatDue    decimal.Decimal `json:"zakat_due"`
}

// Calculate values metals at the given prices, subtracts liabilities and
// applies the rate when net wealth reaches the nisab. Amounts are rounded
// to two places only in the result.
func Calculate(in Input) (*Result, error) {
	basis := strings.ToLower(strings.TrimSpace(in.NisabBasis))
	if basis == "" {
		basis = BasisSilver
	}
	if basis != BasisGold && basis != BasisSilver {
		return nil, errors.NewValidationError("invalid nisab basis", "must be gold or silver")
	}

	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"cash", in.Cash},
		{"gold_grams", in.GoldGrams},
		{"silver_grams", in.SilverGrams},
		{"gold_price_per_gram", in.GoldPricePerGram},
		{"silver_price_per_gram", in.SilverPricePerGram},
		{"investments", in.Investments},
		{"business_assets", in.BusinessAssets},
		{"receivables", in.Receivables},
		{"liabilities", in.Liabilities},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return nil, errors.NewValidationError("amounts must not be negative", f.name)
		}
	}

	var nisab decimal.Decimal
	switch basis {
	case BasisGold:
		if !in.GoldPricePerGram.IsPositive() {
			return nil, errors.NewValidationError("gold price per gram is required for the gold nisab")
		}
		nisab = NisabGoldGrams.Mul(in.GoldPricePerGram)
	case BasisSilver:
		if !in.SilverPricePerGram.IsPositive() {
			return nil, errors.NewValidationError("silver price per gram is required for the silver nisab")
		}
		nisab = NisabSilverGrams.Mul(in.SilverPricePerGram)
	}

	goldValue := in.GoldGrams.Mul(in.GoldPricePerGram)
	silverValue := in.SilverGrams.Mul(in.SilverPricePerGram)
	total := decimal.Sum(in.Cash, goldValue, silverValue, in.Investments, in.BusinessAssets, in.Receivables)
	net := total.Sub(in.Liabilities)

	due := decimal.Zero
	eligible := net.GreaterThanOrEqual(nisab)
	if eligible {
		due = net.Mul(Rate)
	}

	return &Result{
		GoldValue:   goldValue.Round(2),
		SilverValue: silverValue.Round(2),
		TotalAssets: total.Round(2),
		Liabilities: in.Liabilities.Round(2),
		NetWealth:   net.Round(2),
		NisabBasis:  basis,
		NisabValue:  nisab.Round(2),
		Eligible:    eligible,
		ZakatDue:    due.Round(2),
	}, nil
}

// ParseAmount reads an optional decimal field; empty means zero.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.NewValidationError("invalid amount", fmt.Sprintf("%s: %q", field, raw))
	}
	return d, nil
}
