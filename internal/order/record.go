// Package order validates incoming order records and normalizes their
// price to TWD.
//
// A Pipeline runs a fixed chain of validators followed by a converter. The
// first failing step aborts the chain and its *Error is returned as is.
package order

// Record is a decoded order payload. Keys not listed below are carried
// through untouched.
type Record map[string]any

// Top-level order fields.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldAddress  = "address"
	FieldPrice    = "price"
	FieldCurrency = "currency"
)

// Address fields.
const (
	FieldCity     = "city"
	FieldDistrict = "district"
	FieldStreet   = "street"
)

// Supported currencies.
const (
	CurrencyTWD = "TWD"
	CurrencyUSD = "USD"
)

// Defaults applied by NewDefaultPipeline.
const (
	DefaultUSDToTWDRate int64 = 31
	DefaultPriceCeiling int64 = 2000
)

var (
	requiredFields        = []string{FieldID, FieldName, FieldAddress, FieldPrice, FieldCurrency}
	requiredAddressFields = []string{FieldCity, FieldDistrict, FieldStreet}
)

// String returns the string value stored under key. The second result is
// false when the key is missing or not a string.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Clone returns a shallow copy of r. Nested address maps are copied one
// level deep so that the copy can be mutated independently.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if m, ok := asObject(v); ok {
			cp := make(map[string]any, len(m))
			for mk, mv := range m {
				cp[mk] = mv
			}
			v = cp
		}
		out[k] = v
	}
	return out
}
