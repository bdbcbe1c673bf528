package rsa

import (
	"bytes"
	"fmt"
	"math/big"
)

// MarshalText encodes k as "modulus\nexponent" in decimal ASCII.
func (k Key) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return nil, fmt.Errorf("%w: zero key", ErrMalformedKey)
	}
	var buf bytes.Buffer
	buf.WriteString(k.modulus.String())
	buf.WriteByte('\n')
	buf.WriteString(k.exponent.String())
	return buf.Bytes(), nil
}

// ParseKey decodes a key from its two-line text form. A single trailing
// newline and CRLF line endings are accepted.
func ParseKey(text []byte) (Key, error) {
	text = bytes.TrimSuffix(text, []byte("\n"))
	text = bytes.TrimSuffix(text, []byte("\r"))

	lines := bytes.Split(text, []byte("\n"))
	if len(lines) != 2 {
		return Key{}, fmt.Errorf("%w: want 2 lines, got %d", ErrMalformedKey, len(lines))
	}
	modulus, err := parseDecimal("modulus", lines[0])
	if err != nil {
		return Key{}, err
	}
	exponent, err := parseDecimal("exponent", lines[1])
	if err != nil {
		return Key{}, err
	}
	return NewKey(exponent, modulus)
}

func parseDecimal(field string, line []byte) (*big.Int, error) {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return nil, fmt.Errorf("%w: empty %s line", ErrMalformedKey, field)
	}
	for _, c := range line {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %s is not decimal", ErrMalformedKey, field)
		}
	}
	v, ok := new(big.Int).SetString(string(line), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not decimal", ErrMalformedKey, field)
	}
	return v, nil
}
