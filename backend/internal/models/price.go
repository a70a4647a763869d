package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("price must be a number using a dot as the decimal separator, for example 10 or 10.99")

// priceRe accepts plain integers and dot-decimals only. No signs, no commas,
// no exponents, no currency symbols.
var priceRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Price is an exact decimal amount of money. It unmarshals from a JSON number
// or a plain numeric string and always renders with at least one fractional
// digit, so an integer input 3 reads back as 3.0.
type Price struct {
	dec decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{dec: d}
}

func PriceFromFloat(f float64) Price {
	return Price{dec: decimal.NewFromFloat(f)}
}

func (p Price) Decimal() decimal.Decimal {
	return p.dec
}

func (p Price) Float64() float64 {
	f, _ := p.dec.Float64()
	return f
}

func (p Price) Equal(other Price) bool {
	return p.dec.Equal(other.dec)
}

func (p Price) String() string {
	if p.dec.IsInteger() {
		return p.dec.StringFixed(1)
	}
	return p.dec.String()
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return ErrInvalidPrice
		}
		s = quoted
	}

	if !priceRe.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	p.dec = d
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Price) Scan(src any) error {
	return p.dec.Scan(src)
}

func (p Price) Value() (driver.Value, error) {
	return p.dec.Value()
}
