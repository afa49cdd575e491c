package cmd

import (
	"github.com/etnz/brfunds"
	"github.com/etnz/brfunds/date"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of brf.
func Completion() *complete.Command {
	var metrics, periods predict.Set
	for _, m := range brfunds.Metrics() {
		metrics = append(metrics, m.String())
	}
	for _, p := range date.Presets() {
		periods = append(periods, p.String())
	}
	types := predict.Set(brfunds.AssetTypes)
	benchmarks := predict.Set{"cdi", "ibov", "ipca"}

	rangeFlags := map[string]complete.Predictor{
		"start":  predict.Something,
		"end":    predict.Something,
		"period": periods,
	}
	with := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		for k, v := range rangeFlags {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*"),
			"log-level": predict.Set{"trace", "debug", "info", "warn", "error"},
			"source":    predict.Set{"api", "page"},
		},
		Sub: map[string]*complete.Command{
			"search": {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"info":   {Flags: map[string]complete.Predictor{"path": predict.Something}},
			"fund": {Flags: with(map[string]complete.Predictor{
				"metric": metrics,
				"b":      benchmarks,
				"type":   types,
				"csv":    predict.Nothing,
			})},
			"compare": {Flags: with(map[string]complete.Predictor{
				"type":   types,
				"b":      benchmarks,
				"simple": predict.Nothing,
				"full":   predict.Nothing,
				"rebase": predict.Nothing,
				"csv":    predict.Nothing,
			})},
		},
	}
}
