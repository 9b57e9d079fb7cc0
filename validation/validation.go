package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Global is the key for violations that cannot be attributed to a single field.
const Global = "global"

const (
	MsgRequired = "Ce champ est obligatoire"
	MsgInvalid  = "Valeur non autorisée"
)

// Violations maps a field name to a human-readable message.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records msg for field unless the field already carries a violation.
// The first failing rule for a field is the one reported.
func (v Violations) Add(field, msg string) {
	if _, ok := v[field]; ok {
		return
	}
	v[field] = msg
}

// Addf is Add with fmt formatting.
func (v Violations) Addf(field, format string, args ...any) {
	v.Add(field, fmt.Sprintf(format, args...))
}

// Has reports whether field carries a violation.
func (v Violations) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Merge copies violations from other that are not already present.
func (v Violations) Merge(other Violations) {
	for k, msg := range other {
		v.Add(k, msg)
	}
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, MsgRequired)
	}
}

// Present flags field as required when ok is false.
func Present(field string, ok bool, v Violations) {
	if !ok {
		v.Add(field, MsgRequired)
	}
}

// OneOf requires value to be one of allowed.
func OneOf(field, value string, allowed []string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, MsgRequired)
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, MsgInvalid)
}

// MinDecimal requires val to be set and >= minVal. It reports whether the
// value passed so callers can chain cross-field rules.
func MinDecimal(field string, val decimal.NullDecimal, minVal decimal.Decimal, v Violations) bool {
	if !val.Valid {
		v.Add(field, MsgRequired)
		return false
	}
	if val.Decimal.LessThan(minVal) {
		v.Addf(field, "La valeur doit être supérieure ou égale à %s", frenchDecimal(minVal))
		return false
	}
	return true
}

// PositiveDecimal requires val to be set and strictly positive.
func PositiveDecimal(field string, val decimal.NullDecimal, v Violations) bool {
	if !val.Valid {
		v.Add(field, MsgRequired)
		return false
	}
	if !val.Decimal.IsPositive() {
		v.Add(field, "La valeur doit être strictement positive")
		return false
	}
	return true
}

// RangeDecimal requires val to be set and within [minVal, maxVal].
func RangeDecimal(field string, val decimal.NullDecimal, minVal, maxVal decimal.Decimal, v Violations) bool {
	if !val.Valid {
		v.Add(field, MsgRequired)
		return false
	}
	if val.Decimal.LessThan(minVal) || val.Decimal.GreaterThan(maxVal) {
		v.Addf(field, "La valeur doit être comprise entre %s et %s", frenchDecimal(minVal), frenchDecimal(maxVal))
		return false
	}
	return true
}

// MinInt requires val to be set and >= minVal.
func MinInt(field string, val *int64, minVal int64, v Violations) bool {
	if val == nil {
		v.Add(field, MsgRequired)
		return false
	}
	if *val < minVal {
		v.Addf(field, "La valeur doit être supérieure ou égale à %d", minVal)
		return false
	}
	return true
}

func frenchDecimal(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}

// BlankToNull rewrites the blank strings of a JSON document as null, so
// empty form fields decode as unset dates, amounts and counts.
func BlankToNull(b []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(nullBlanks(v))
}

func nullBlanks(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = nullBlanks(e)
		}
	case []any:
		for i, e := range x {
			x[i] = nullBlanks(e)
		}
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
	}
	return v
}
