package order

import "math/big"

// Converter rewrites a validated record into its canonical form.
type Converter interface {
	Convert(r Record) (Record, error)
}

// FixedRateConverter expresses USD prices in TWD using a constant rate.
// Records in any other currency are returned unchanged.
type FixedRateConverter struct {
	rate *big.Int
}

// NewFixedRateConverter creates a converter multiplying USD prices by rate.
func NewFixedRateConverter(rate int64) *FixedRateConverter {
	return &FixedRateConverter{rate: big.NewInt(rate)}
}

// Convert updates the price of USD records in place and returns the record.
func (c *FixedRateConverter) Convert(r Record) (Record, error) {
	currency, _ := r.String(FieldCurrency)
	if currency != CurrencyUSD {
		return r, nil
	}

	price, _ := r.String(FieldPrice)
	n, ok := parseInteger(price)
	if !ok {
		return nil, ErrPriceConversionFailed
	}
	r[FieldPrice] = n.Mul(n, c.rate).String()
	return r, nil
}

var _ Converter = (*FixedRateConverter)(nil)
