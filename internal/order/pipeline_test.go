package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		"id":   "A123",
		"name": "John Doe",
		"address": map[string]any{
			"city":     "Taipei",
			"district": "Zhongzheng",
			"street":   "Xinyi Road",
		},
		"price":    "1000",
		"currency": "USD",
	}
}

func TestPipeline_Process(t *testing.T) {
	p := NewDefaultPipeline()

	tests := []struct {
		name    string
		mutate  func(r Record)
		price   string
		wantErr string
	}{
		{name: "usd converted", price: "31000"},
		{name: "twd unchanged", mutate: func(r Record) { r["currency"] = "TWD" }, price: "1000"},
		{name: "usd at ceiling", mutate: func(r Record) { r["price"] = "2000" }, price: "62000"},
		{name: "negative usd", mutate: func(r Record) { r["price"] = "-3" }, price: "-93"},
		{
			name:    "missing street",
			mutate:  func(r Record) { delete(r["address"].(map[string]any), "street") },
			wantErr: "地址缺少必要欄位: street",
		},
		{name: "invalid price", mutate: func(r Record) { r["price"] = "invalid_price" }, wantErr: "400-Price format is wrong"},
		{name: "price over ceiling", mutate: func(r Record) { r["price"] = "2001" }, wantErr: "400-Price is over 2000"},
		{name: "eur rejected", mutate: func(r Record) { r["currency"] = "EUR" }, wantErr: "400-Currency format is wrong"},
		{name: "lowercase name", mutate: func(r Record) { r["name"] = "john doe" }, wantErr: "400-Name contains non English characters"},
		{name: "letters only name", mutate: func(r Record) { r["name"] = "JOHNDOE" }, wantErr: "400-Name is not capitalized"},
		{name: "missing id", mutate: func(r Record) { delete(r, "id") }, wantErr: "缺少必要欄位: id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			if tc.mutate != nil {
				tc.mutate(r)
			}

			out, err := p.Process(r)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				assert.True(t, IsValidation(err))
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.price, out["price"])
		})
	}
}

func TestPipeline_PassesThroughOtherFields(t *testing.T) {
	r := validRecord()
	r["extra_field"] = "extra_value"
	r["currency"] = "USD"

	out, err := NewDefaultPipeline().Process(r)
	require.NoError(t, err)

	assert.Equal(t, "extra_value", out["extra_field"])
	assert.Equal(t, "USD", out["currency"])
	assert.Equal(t, "A123", out["id"])
	assert.Equal(t, "John Doe", out["name"])
	assert.Equal(t, validRecord()["address"], out["address"])
}

func TestPipeline_ConversionIsNotIdempotent(t *testing.T) {
	p := NewDefaultPipeline()

	out, err := p.Process(validRecord())
	require.NoError(t, err)
	assert.Equal(t, "31000", out["price"])

	// Feeding the output back converts again and then trips the ceiling.
	_, err = p.Process(out)
	assert.ErrorIs(t, err, ErrPriceTooHigh)
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	var calls []string
	record := func(name string, err error) Validator {
		return ValidatorFunc(func(Record) error {
			calls = append(calls, name)
			return err
		})
	}
	conv := &countingConverter{}

	p := NewPipeline(conv, record("first", nil), record("second", ErrCurrencyInvalid), record("third", nil))
	_, err := p.Process(validRecord())

	assert.Same(t, ErrCurrencyInvalid, err)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Zero(t, conv.calls)
}

func TestPipeline_ConvertsOnce(t *testing.T) {
	conv := &countingConverter{}
	p := NewPipeline(conv, NewStructuralValidator())

	_, err := p.Process(validRecord())
	require.NoError(t, err)
	assert.Equal(t, 1, conv.calls)
}

func TestNewDefaultPipeline_Options(t *testing.T) {
	t.Run("custom rate", func(t *testing.T) {
		out, err := NewDefaultPipeline(WithRate(30)).Process(validRecord())
		require.NoError(t, err)
		assert.Equal(t, "30000", out["price"])
	})

	t.Run("custom ceiling", func(t *testing.T) {
		_, err := NewDefaultPipeline(WithPriceCeiling(500)).Process(validRecord())
		require.Error(t, err)
		assert.Equal(t, "400-Price is over 500", err.Error())
	})

	t.Run("zero ceiling", func(t *testing.T) {
		r := validRecord()
		r["price"] = "5"
		_, err := NewDefaultPipeline(WithPriceCeiling(0)).Process(r)
		assert.ErrorIs(t, err, ErrPriceTooHigh)
		assert.Equal(t, "400-Price is over 0", err.Error())
	})

	t.Run("collapsed price errors", func(t *testing.T) {
		r := validRecord()
		r["price"] = "5000"
		_, err := NewDefaultPipeline(WithCollapsedPriceErrors()).Process(r)
		assert.ErrorIs(t, err, ErrPriceFormatInvalid)
		assert.Equal(t, "400-Price format is wrong", err.Error())
	})
}

type countingConverter struct {
	calls int
}

func (c *countingConverter) Convert(r Record) (Record, error) {
	c.calls++
	return r, nil
}
