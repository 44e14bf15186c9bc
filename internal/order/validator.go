package order

import (
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validator checks one aspect of an order record. Implementations must not
// modify the record.
type Validator interface {
	Validate(r Record) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(r Record) error

// Validate calls f(r).
func (f ValidatorFunc) Validate(r Record) error { return f(r) }

// StructuralValidator ensures that every required field is present and has
// the expected JSON shape.
type StructuralValidator struct{}

// NewStructuralValidator creates a new StructuralValidator.
func NewStructuralValidator() *StructuralValidator {
	return &StructuralValidator{}
}

// Validate reports the first missing or mistyped field.
func (v *StructuralValidator) Validate(r Record) error {
	for _, field := range requiredFields {
		if _, ok := r[field]; !ok {
			return missingField(ScopeOrder, field)
		}
	}

	if _, ok := r.String(FieldID); !ok {
		return invalidType(ScopeOrder, FieldID)
	}
	if _, ok := r.String(FieldName); !ok {
		return invalidType(ScopeOrder, FieldName)
	}

	addr, ok := asObject(r[FieldAddress])
	if !ok {
		return invalidType(ScopeOrder, FieldAddress)
	}
	for _, field := range requiredAddressFields {
		val, ok := addr[field]
		if !ok {
			return missingField(ScopeAddress, field)
		}
		if _, ok := val.(string); !ok {
			return invalidType(ScopeAddress, field)
		}
	}

	if _, ok := r.String(FieldPrice); !ok {
		return invalidType(ScopeOrder, FieldPrice)
	}
	if _, ok := r.String(FieldCurrency); !ok {
		return invalidType(ScopeOrder, FieldCurrency)
	}
	return nil
}

// BusinessValidator applies the name, price and currency rules. It expects
// a record that already passed StructuralValidator.
type BusinessValidator struct {
	ceiling             *big.Int
	collapsePriceErrors bool
	currencies          map[string]struct{}
}

// NewBusinessValidator creates a BusinessValidator with the given price
// ceiling. With collapsePriceErrors set, a price above the ceiling is
// reported as PriceFormatInvalid instead of PriceTooHigh.
func NewBusinessValidator(ceiling int64, collapsePriceErrors bool) *BusinessValidator {
	return &BusinessValidator{
		ceiling:             big.NewInt(ceiling),
		collapsePriceErrors: collapsePriceErrors,
		currencies: map[string]struct{}{
			CurrencyTWD: {},
			CurrencyUSD: {},
		},
	}
}

// Validate reports the first business rule the record breaks.
func (v *BusinessValidator) Validate(r Record) error {
	name, _ := r.String(FieldName)
	if !startsUpper(name) {
		return ErrNameNotEnglish
	}
	// A name made only of ASCII letters is rejected, so "John" fails while
	// "John Doe" passes.
	if !hasNonASCIILetter(name) {
		return ErrNameNotCapitalized
	}

	price, _ := r.String(FieldPrice)
	n, ok := parseInteger(price)
	if !ok {
		return ErrPriceFormatInvalid
	}
	if n.Cmp(v.ceiling) > 0 {
		if v.collapsePriceErrors {
			return ErrPriceFormatInvalid
		}
		return &Error{Kind: PriceTooHigh, Limit: v.ceiling.Int64()}
	}

	currency, _ := r.String(FieldCurrency)
	if _, ok := v.currencies[currency]; !ok {
		return ErrCurrencyInvalid
	}
	return nil
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first)
}

func hasNonASCIILetter(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return true
		}
	}
	return false
}

// parseInteger parses a signed base-10 integer of any size. Surrounding
// whitespace is ignored. Digit separators ("1_000") and non-ASCII digits are
// rejected.
func parseInteger(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	default:
		return nil, false
	}
}

var (
	_ Validator = (*StructuralValidator)(nil)
	_ Validator = (*BusinessValidator)(nil)
)
