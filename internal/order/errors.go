package order

import (
	"errors"
	"fmt"
)

// Kind identifies which rule rejected an order record.
type Kind int

// Error kinds raised by the validators and the converter.
const (
	MissingField Kind = iota + 1
	InvalidType
	NameNotEnglish
	NameNotCapitalized
	PriceFormatInvalid
	PriceTooHigh
	CurrencyInvalid
	PriceConversionFailed
)

// Scope tells whether a field error refers to a top-level key or to a key
// nested under "address".
type Scope int

// Field scopes.
const (
	ScopeOrder Scope = iota
	ScopeAddress
)

// Error is a validation-class failure. Its message is the literal text
// returned to API clients.
type Error struct {
	Kind  Kind
	Field string
	Scope Scope
	Limit int64 // price ceiling, set for PriceTooHigh
}

var typeMessages = map[string]string{
	FieldID:       "訂單 ID 格式錯誤，必須是字串",
	FieldName:     "訂單名稱格式錯誤，必須是字串",
	FieldAddress:  "地址格式錯誤，必須是物件",
	FieldPrice:    "價格格式錯誤，必須是字串",
	FieldCurrency: "貨幣格式錯誤，必須是字串",
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case MissingField:
		if e.Scope == ScopeAddress {
			return "地址缺少必要欄位: " + e.Field
		}
		return "缺少必要欄位: " + e.Field
	case InvalidType:
		if e.Scope == ScopeAddress {
			return fmt.Sprintf("地址欄位 %s 格式錯誤，必須是字串", e.Field)
		}
		if msg, ok := typeMessages[e.Field]; ok {
			return msg
		}
		return e.Field + " 格式錯誤"
	case NameNotEnglish:
		return "400-Name contains non English characters"
	case NameNotCapitalized:
		return "400-Name is not capitalized"
	case PriceFormatInvalid:
		return "400-Price format is wrong"
	case PriceTooHigh:
		return fmt.Sprintf("400-Price is over %d", e.Limit)
	case CurrencyInvalid:
		return "400-Currency format is wrong"
	case PriceConversionFailed:
		return "價格轉換失敗"
	default:
		return "unknown order error"
	}
}

// Is reports whether target is an *Error of the same kind. Field and scope
// are compared only when target sets them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || (t.Field == e.Field && t.Scope == e.Scope)
}

// Sentinel values for errors.Is checks on field-less kinds.
var (
	ErrNameNotEnglish        = &Error{Kind: NameNotEnglish}
	ErrNameNotCapitalized    = &Error{Kind: NameNotCapitalized}
	ErrPriceFormatInvalid    = &Error{Kind: PriceFormatInvalid}
	ErrPriceTooHigh          = &Error{Kind: PriceTooHigh, Limit: DefaultPriceCeiling}
	ErrCurrencyInvalid       = &Error{Kind: CurrencyInvalid}
	ErrPriceConversionFailed = &Error{Kind: PriceConversionFailed}
)

func missingField(scope Scope, field string) *Error {
	return &Error{Kind: MissingField, Field: field, Scope: scope}
}

func invalidType(scope Scope, field string) *Error {
	return &Error{Kind: InvalidType, Field: field, Scope: scope}
}

// IsValidation reports whether err carries an order validation error.
func IsValidation(err error) bool {
	var oe *Error
	return errors.As(err, &oe)
}
