package renderer

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format is the display format of a column.
type Format int

const (
	Plain Format = iota // shortest representation
	Ratio               // a ratio displayed as a percentage
	Money               // an amount in BRL
	Count               // an integer count
)

// Format returns v formatted.
func (f Format) Format(v float64) string {
	switch f {
	case Ratio:
		return fmt.Sprintf("%.2f%%", v*100)
	case Money:
		return BRL(v)
	case Count:
		return strconv.FormatInt(decimal.NewFromFloat(v).Round(0).IntPart(), 10)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// BRL displays amount in Brazilian reais, rounded to the cent.
func BRL(amount float64) string {
	cur := money.GetCurrency(money.BRL)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	cents := decimal.NewFromFloat(amount).Mul(factor).Round(0)
	return money.New(cents.IntPart(), money.BRL).Display()
}
