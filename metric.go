package brfunds

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric is one of the per-fund series a Source can chart.
type Metric string

const (
	Rentability  Metric = "rentability"
	Volatility   Metric = "volatility"
	Shareholders Metric = "shareholders"
	NetWorth     Metric = "networth"
	Drawdown     Metric = "drawdown"
)

var (
	percent    = decimal.New(1, -2)
	decimalOne = decimal.NewFromInt(1)
)

// scales is the single place where the unit of every metric is declared.
// Percentages are returned by the sources as 0-100 numbers and scaled to ratios.
var scales = map[Metric]decimal.Decimal{
	Rentability:  percent,
	Volatility:   percent,
	Drawdown:     percent,
	NetWorth:     decimalOne,
	Shareholders: decimalOne,
}

// Metrics lists all known metrics.
func Metrics() []Metric {
	return []Metric{Rentability, Volatility, Shareholders, NetWorth, Drawdown}
}

// ParseMetric returns the metric named m, rentability when m is empty.
func ParseMetric(m string) (Metric, error) {
	if m == "" {
		return Rentability, nil
	}
	metric := Metric(strings.ToLower(strings.TrimSpace(m)))
	if _, ok := scales[metric]; !ok {
		return "", fmt.Errorf("unknown metric %q", m)
	}
	return metric, nil
}

// Scale returns the multiplier applied to every raw value of that metric.
func (m Metric) Scale() decimal.Decimal {
	if s, ok := scales[m]; ok {
		return s
	}
	return decimalOne
}

func (m Metric) String() string { return string(m) }
