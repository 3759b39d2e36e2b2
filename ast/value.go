package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Typed accessors interpret a key's value string on demand. The stored value
// is never mutated; all accessors work on a copy. Parsing follows the lenient
// conventions of hand-edited configuration files: surrounding whitespace is
// ignored and booleans accept the usual spellings.

// Bool interprets the value as a boolean. Accepted spellings (case
// insensitive): true/false, yes/no, on/off, 1/0.
func (k *Key) Bool() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(k.Value)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("key %q: value %q is not a boolean", k.Name, k.Value)
}

// Int interprets the value as a base-10 integer.
func (k *Key) Int() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(k.Value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("key %q: value %q is not an integer", k.Name, k.Value)
	}
	return n, nil
}

// Float interprets the value as a floating point number.
func (k *Key) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(k.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("key %q: value %q is not a number", k.Name, k.Value)
	}
	return f, nil
}

// Decimal interprets the value as an arbitrary-precision decimal. Use this
// instead of Float when the exact decimal representation matters (prices,
// quantities, rates).
func (k *Key) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(k.Value))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("key %q: value %q is not a decimal", k.Name, k.Value)
	}
	return d, nil
}

// StringList splits the value on the given separator, trimming whitespace
// around each element. Empty elements are preserved so that "a,,b" yields
// three entries.
func (k *Key) StringList(sep string) []string {
	parts := strings.Split(k.Value, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
